package services

import (
	"context"
	"errors"
	"testing"

	"finbook/internal/core"
	"finbook/internal/storage"
	"finbook/internal/storage/memory"
)

func TestLedgerService_Workspaces(t *testing.T) {
	store := memory.New()
	svc := NewLedgerService(store)
	ctx := context.Background()

	w, err := svc.CreateWorkspace(ctx, "  Family Finances  ")
	if err != nil {
		t.Fatalf("CreateWorkspace: %v", err)
	}
	if w.Name != "Family Finances" {
		t.Errorf("Name = %q, want trimmed", w.Name)
	}
	if w.ID == "" {
		t.Error("expected generated ID")
	}

	if _, err := svc.CreateWorkspace(ctx, "   "); !errors.Is(err, core.ErrEmptyName) {
		t.Errorf("blank name: want ErrEmptyName, got %v", err)
	}

	if err := svc.RenameWorkspace(ctx, w.ID, "Household"); err != nil {
		t.Fatalf("RenameWorkspace: %v", err)
	}
	got, err := svc.GetWorkspace(ctx, w.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Household" {
		t.Errorf("Name after rename = %q, want Household", got.Name)
	}
}

func TestLedgerService_Accounts(t *testing.T) {
	store := memory.New()
	svc := NewLedgerService(store)
	ctx := context.Background()

	w, err := svc.CreateWorkspace(ctx, "Household")
	if err != nil {
		t.Fatal(err)
	}

	t.Run("create parses opening balance and uppercases currency", func(t *testing.T) {
		a, err := svc.CreateAccount(ctx, w.ID, AccountInput{
			Name:           "Checking",
			Kind:           core.AccountBank,
			Currency:       "eur",
			OpeningBalance: "1.234,56", // mixed separators coerce to zero
		})
		if err != nil {
			t.Fatalf("CreateAccount: %v", err)
		}
		if a.Currency != "EUR" {
			t.Errorf("Currency = %q, want EUR", a.Currency)
		}
		if a.OpeningBalance.Cents != 0 {
			t.Errorf("OpeningBalance = %d, want 0", a.OpeningBalance.Cents)
		}

		b, err := svc.CreateAccount(ctx, w.ID, AccountInput{
			Name: "Savings", Kind: core.AccountBank, Currency: "EUR", OpeningBalance: "500,75",
		})
		if err != nil {
			t.Fatal(err)
		}
		if b.OpeningBalance.Cents != 50075 {
			t.Errorf("OpeningBalance = %d, want 50075", b.OpeningBalance.Cents)
		}
	})

	t.Run("invalid kind rejected", func(t *testing.T) {
		_, err := svc.CreateAccount(ctx, w.ID, AccountInput{Name: "X", Kind: "wallet", Currency: "EUR"})
		if !errors.Is(err, core.ErrInvalidKind) {
			t.Errorf("want ErrInvalidKind, got %v", err)
		}
	})

	t.Run("invalid currency rejected", func(t *testing.T) {
		_, err := svc.CreateAccount(ctx, w.ID, AccountInput{Name: "X", Kind: core.AccountCash, Currency: "EURO"})
		if !errors.Is(err, core.ErrInvalidCurrency) {
			t.Errorf("want ErrInvalidCurrency, got %v", err)
		}
	})

	t.Run("unknown workspace rejected", func(t *testing.T) {
		_, err := svc.CreateAccount(ctx, "nope", AccountInput{Name: "X", Kind: core.AccountCash, Currency: "EUR"})
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("want ErrNotFound, got %v", err)
		}
	})
}

func TestLedgerService_DeleteAccount_RemovesTransactions(t *testing.T) {
	store := memory.New()
	svc := NewLedgerService(store)
	txnSvc := NewTransactionService(store, nil)
	ctx := context.Background()

	w, err := svc.CreateWorkspace(ctx, "Household")
	if err != nil {
		t.Fatal(err)
	}
	a, err := svc.CreateAccount(ctx, w.ID, AccountInput{Name: "Checking", Kind: core.AccountBank, Currency: "EUR"})
	if err != nil {
		t.Fatal(err)
	}
	txn, err := txnSvc.Create(ctx, w.ID, TransactionInput{
		AccountID: a.ID, Date: "2026-03-10", Description: "coffee", Amount: "-3.50",
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.DeleteAccount(ctx, w.ID, a.ID); err != nil {
		t.Fatalf("DeleteAccount: %v", err)
	}
	if _, err := txnSvc.Get(ctx, w.ID, txn.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("transaction should be gone with its account, got %v", err)
	}
}

func TestLedgerService_DeleteCategory_LeavesTransactionsUncategorized(t *testing.T) {
	store := memory.New()
	svc := NewLedgerService(store)
	txnSvc := NewTransactionService(store, nil)
	ctx := context.Background()

	w, err := svc.CreateWorkspace(ctx, "Household")
	if err != nil {
		t.Fatal(err)
	}
	a, err := svc.CreateAccount(ctx, w.ID, AccountInput{Name: "Checking", Kind: core.AccountBank, Currency: "EUR"})
	if err != nil {
		t.Fatal(err)
	}
	c, err := svc.CreateCategory(ctx, w.ID, CategoryInput{Name: "Groceries", Kind: core.KindExpense})
	if err != nil {
		t.Fatal(err)
	}
	txn, err := txnSvc.Create(ctx, w.ID, TransactionInput{
		AccountID: a.ID, CategoryID: c.ID, Date: "2026-03-10", Description: "weekly shop", Amount: "40",
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.DeleteCategory(ctx, w.ID, c.ID); err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}

	got, err := txnSvc.Get(ctx, w.ID, txn.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.CategoryID != "" {
		t.Errorf("CategoryID = %q, want empty after category delete", got.CategoryID)
	}
	// The stored sign stays as it was normalized at write time.
	if got.Amount.Cents != -4000 {
		t.Errorf("Amount = %d, want -4000", got.Amount.Cents)
	}
}

func TestLedgerService_UpdateCategory_KeepsExistingAmounts(t *testing.T) {
	store := memory.New()
	svc := NewLedgerService(store)
	txnSvc := NewTransactionService(store, nil)
	ctx := context.Background()

	w, _ := svc.CreateWorkspace(ctx, "Household")
	a, _ := svc.CreateAccount(ctx, w.ID, AccountInput{Name: "Checking", Kind: core.AccountBank, Currency: "EUR"})
	c, _ := svc.CreateCategory(ctx, w.ID, CategoryInput{Name: "Misc", Kind: core.KindExpense})

	txn, err := txnSvc.Create(ctx, w.ID, TransactionInput{
		AccountID: a.ID, CategoryID: c.ID, Date: "2026-03-10", Description: "misc", Amount: "10",
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.UpdateCategory(ctx, w.ID, c.ID, CategoryInput{Name: "Misc", Kind: core.KindIncome}); err != nil {
		t.Fatalf("UpdateCategory: %v", err)
	}

	got, err := txnSvc.Get(ctx, w.ID, txn.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Amount.Cents != -1000 {
		t.Errorf("Amount = %d, want -1000 (kind change reapplies only on transaction writes)", got.Amount.Cents)
	}
}
