package core

import (
	"errors"
	"strings"
	"testing"
)

func TestAccountValidate(t *testing.T) {
	valid := Account{Name: "Checking", Kind: AccountBank, Currency: "USD"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid account rejected: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(*Account)
		wantErr error
	}{
		{"empty name", func(a *Account) { a.Name = "  " }, ErrEmptyName},
		{"bad kind", func(a *Account) { a.Kind = "wallet" }, ErrInvalidKind},
		{"bad currency", func(a *Account) { a.Currency = "US" }, ErrInvalidCurrency},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := valid
			tt.mutate(&a)
			if err := a.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCategoryValidate(t *testing.T) {
	if err := (Category{Name: "Groceries", Kind: KindExpense}).Validate(); err != nil {
		t.Fatalf("valid category rejected: %v", err)
	}
	if err := (Category{Name: "X", Kind: "savings"}).Validate(); !errors.Is(err, ErrInvalidKind) {
		t.Errorf("unexpected error for bad kind: %v", err)
	}
	if err := (Category{Name: "", Kind: KindIncome}).Validate(); !errors.Is(err, ErrEmptyName) {
		t.Errorf("unexpected error for empty name: %v", err)
	}
}

func TestTransactionValidate(t *testing.T) {
	valid := Transaction{Date: NewDate(2024, 1, 1), Description: "coffee"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid transaction rejected: %v", err)
	}
	if err := (Transaction{Description: "coffee"}).Validate(); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("zero date: %v", err)
	}
	if err := (Transaction{Date: NewDate(2024, 1, 1)}).Validate(); !errors.Is(err, ErrEmptyDescription) {
		t.Errorf("empty description: %v", err)
	}
	long := Transaction{Date: NewDate(2024, 1, 1), Description: strings.Repeat("x", 201)}
	if err := long.Validate(); err == nil {
		t.Error("overlong description accepted")
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-05")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.ISO() != "2024-01-05" {
		t.Errorf("ISO() = %q", d.ISO())
	}
	if d.MonthKey() != "2024-01" {
		t.Errorf("MonthKey() = %q", d.MonthKey())
	}
	if _, err := ParseDate("01/05/2024"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("bad format error = %v", err)
	}
}

func TestValidMonthKey(t *testing.T) {
	if !ValidMonthKey("2024-03") {
		t.Error("2024-03 rejected")
	}
	for _, bad := range []string{"2024-13", "2024-3", "202403", "march"} {
		if ValidMonthKey(bad) {
			t.Errorf("%q accepted", bad)
		}
	}
}
