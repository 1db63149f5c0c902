package core

import "testing"

func TestParseAmountToCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
	}{
		{"1", 100},
		{"1.0", 100},
		{"1.23", 123},
		{"1,23", 123},
		{"0.01", 1},
		{"1.005", 101}, // half-up rounding
		{" 2.50 ", 250},
		{"-1", -100},
		{"-12,34", -1234},
		{"+50", 5000},
		{"-1.005", -101},
		{".5", 50},
		{"0", 0},
		{"", 0},
		{"   ", 0},
		{"abc", 0},
		{"1.2.3", 0},
		{"12x", 0},
		{"--1", 0},
	}
	for _, tc := range cases {
		if got := ParseAmountToCents(tc.in); got != tc.out {
			t.Errorf("ParseAmountToCents(%q) = %d, want %d", tc.in, got, tc.out)
		}
	}
}

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		name string
		text string
		kind CategoryKind
		want int64
	}{
		{"expense forces negative", "50", KindExpense, -5000},
		{"expense keeps negative", "-50", KindExpense, -5000},
		{"income forces positive", "-50", KindIncome, 5000},
		{"income keeps positive", "50", KindIncome, 5000},
		{"uncategorized preserves sign", "-12.34", KindNone, -1234},
		{"uncategorized positive", "12.34", KindNone, 1234},
		{"garbage coerces to zero", "abc", KindExpense, 0},
		{"blank coerces to zero", "", KindIncome, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeAmount(tt.text, tt.kind)
			if got.Cents != tt.want {
				t.Errorf("NormalizeAmount(%q, %q) = %d, want %d", tt.text, tt.kind, got.Cents, tt.want)
			}
		})
	}
}

func TestNormalizeAmountSignProperty(t *testing.T) {
	// For any nonzero input the sign must follow the kind, regardless of the
	// sign of the raw text.
	inputs := []string{"1", "-1", "99.99", "-99.99", "+0.01"}
	for _, in := range inputs {
		if got := NormalizeAmount(in, KindExpense); got.Cents >= 0 {
			t.Errorf("NormalizeAmount(%q, expense) = %d, want negative", in, got.Cents)
		}
		if got := NormalizeAmount(in, KindIncome); got.Cents <= 0 {
			t.Errorf("NormalizeAmount(%q, income) = %d, want positive", in, got.Cents)
		}
		if got, parsed := NormalizeAmount(in, KindNone), ParseAmountToCents(in); got.Cents != parsed {
			t.Errorf("NormalizeAmount(%q, none) = %d, want %d", in, got.Cents, parsed)
		}
	}
}

func TestApplySign(t *testing.T) {
	if got := ApplySign(Money{Cents: 5000}, KindExpense); got.Cents != -5000 {
		t.Errorf("ApplySign(+50, expense) = %d, want -5000", got.Cents)
	}
	if got := ApplySign(Money{Cents: -5000}, KindIncome); got.Cents != 5000 {
		t.Errorf("ApplySign(-50, income) = %d, want 5000", got.Cents)
	}
	if got := ApplySign(Money{Cents: -5000}, KindNone); got.Cents != -5000 {
		t.Errorf("ApplySign(-50, none) = %d, want -5000", got.Cents)
	}
}

func TestMoneyString(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{125, "1.25"},
		{-2000, "-20.00"},
		{12500, "125.00"},
	}
	for _, tc := range cases {
		if got := (Money{Cents: tc.cents}).String(); got != tc.want {
			t.Errorf("Money{%d}.String() = %q, want %q", tc.cents, got, tc.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	if got := FormatMoney(Money{Cents: -2050}, "USD"); got != "USD -20.50" {
		t.Errorf("FormatMoney = %q", got)
	}
	if got := FormatMoney(Money{Cents: 100}, ""); got != "1.00" {
		t.Errorf("FormatMoney without currency = %q", got)
	}
}
