// Package core holds the pure computation layer: money parsing and sign
// normalization, statement building with running balances, and in-memory
// grouping/summaries. Nothing in this package performs I/O.
package core

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Money is a currency amount in integer minor units (cents). The running
// balance accumulator works on cents end to end; floats only ever appear at
// display boundaries.
type Money struct {
	Cents int64
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{Cents: m.Cents + other.Cents}
}

// Abs returns the absolute value.
func (m Money) Abs() Money {
	if m.Cents < 0 {
		return Money{Cents: -m.Cents}
	}
	return m
}

// Neg returns the negated amount.
func (m Money) Neg() Money {
	return Money{Cents: -m.Cents}
}

// String renders the amount as a plain signed decimal, e.g. "-12.50".
func (m Money) String() string {
	cents := m.Cents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// ParseAmountToCents converts free-text decimal input to signed cents.
//
// The parse is deliberately lenient: blank or non-numeric input coerces to 0
// so that partially-typed form values never fail a computation mid-edit.
// Both dot (12.34) and comma (12,34) decimal separators are accepted, an
// optional leading + or - carries the sign, and the third decimal digit
// rounds half-up.
//
//	ParseAmountToCents("50")     -> 5000
//	ParseAmountToCents("-12,34") -> -1234
//	ParseAmountToCents("1.005")  -> 101
//	ParseAmountToCents("abc")    -> 0
func ParseAmountToCents(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", ".")

	negative := false
	switch {
	case strings.HasPrefix(s, "-"):
		negative = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0
		}
	}

	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0
	}
	const maxSafeInt64 = (1<<63 - 1) / 100
	if iv > maxSafeInt64 {
		return 0
	}

	// First two fractional digits are cents; half-up rounding on the third.
	var fracCents int64
	if len(fracPart) > 0 {
		fracCents = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			fracCents += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}

	cents := iv*100 + fracCents
	if negative {
		cents = -cents
	}
	return cents
}

// NormalizeAmount parses free-text amount input and forces its sign to match
// the category kind. The kind is the source of truth for sign whenever a
// category is present; uncategorized input keeps the user-entered sign.
//
//	NormalizeAmount("50", KindExpense)  -> -50.00
//	NormalizeAmount("-50", KindIncome)  -> +50.00
//	NormalizeAmount("-50", KindNone)    -> -50.00
//	NormalizeAmount("abc", KindExpense) -> 0.00
func NormalizeAmount(text string, kind CategoryKind) Money {
	parsed := Money{Cents: ParseAmountToCents(text)}
	return ApplySign(parsed, kind)
}

// ApplySign forces an already-parsed amount to carry the sign its category
// kind requires. Used when a transaction changes category and the stored
// amount must be re-normalized against the new kind.
func ApplySign(amount Money, kind CategoryKind) Money {
	switch kind {
	case KindExpense:
		return amount.Abs().Neg()
	case KindIncome:
		return amount.Abs()
	default:
		return amount
	}
}

// FormatMoney renders cents with a currency code for display, e.g.
// "USD -12.50". Rounding happened at parse time; this is purely cosmetic.
func FormatMoney(m Money, currency string) string {
	if currency == "" {
		return m.String()
	}
	return currency + " " + m.String()
}
