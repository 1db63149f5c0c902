package core

import (
	"errors"
	"strings"
	"time"
)

const (
	AccountBank       AccountKind = "bank"
	AccountCash       AccountKind = "cash"
	AccountCreditCard AccountKind = "credit_card"
	AccountLoan       AccountKind = "loan"
	AccountInvestment AccountKind = "investment"
	AccountOther      AccountKind = "other"
)

const (
	KindIncome  CategoryKind = "income"
	KindExpense CategoryKind = "expense"
	// KindNone marks an uncategorized transaction; sign stays user-supplied.
	KindNone CategoryKind = ""
)

type (
	AccountKind  string
	CategoryKind string

	Workspace struct {
		ID        string
		Name      string
		CreatedAt time.Time
	}

	Account struct {
		ID             string
		WorkspaceID    string
		Name           string
		Kind           AccountKind
		Currency       string
		OpeningBalance Money
		CreatedAt      time.Time
	}

	Category struct {
		ID          string
		WorkspaceID string
		Name        string
		Kind        CategoryKind
		CreatedAt   time.Time
	}

	Transaction struct {
		ID          string
		WorkspaceID string
		AccountID   string
		CategoryID  string // empty when uncategorized
		Date        Date
		Description string
		Amount      Money
		CreatedAt   time.Time // tie-breaker for same-day ordering only
	}

	// BudgetRow is one planned amount for a category in a given month.
	BudgetRow struct {
		WorkspaceID string
		Month       string // YYYY-MM
		CategoryID  string
		Planned     Money
	}
)

var (
	ErrEmptyName        = errors.New("empty name")
	ErrEmptyDescription = errors.New("empty description")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidKind      = errors.New("invalid kind")
	ErrInvalidCurrency  = errors.New("invalid currency code")
	ErrInvalidMonthKey  = errors.New("invalid month key")
)

func (k AccountKind) Valid() bool {
	switch k {
	case AccountBank, AccountCash, AccountCreditCard, AccountLoan, AccountInvestment, AccountOther:
		return true
	}
	return false
}

func (k CategoryKind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

func (w Workspace) Validate() error {
	if strings.TrimSpace(w.Name) == "" {
		return ErrEmptyName
	}
	if len(w.Name) > 120 {
		return errors.New("name too long (max 120 characters)")
	}
	return nil
}

func (a Account) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrEmptyName
	}
	if len(a.Name) > 120 {
		return errors.New("name too long (max 120 characters)")
	}
	if !a.Kind.Valid() {
		return ErrInvalidKind
	}
	if len(a.Currency) != 3 {
		return ErrInvalidCurrency
	}
	return nil
}

func (c Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if len(c.Name) > 120 {
		return errors.New("name too long (max 120 characters)")
	}
	if !c.Kind.Valid() {
		return ErrInvalidKind
	}
	return nil
}

func (t Transaction) Validate() error {
	if t.Date.IsZero() {
		return ErrInvalidDate
	}
	if strings.TrimSpace(t.Description) == "" {
		return ErrEmptyDescription
	}
	if len(t.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	return nil
}

// Date is a calendar date without a time component.
type Date struct {
	time.Time
}

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO calendar date (YYYY-MM-DD).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

// ISO renders the date as YYYY-MM-DD.
func (d Date) ISO() string {
	return d.Format("2006-01-02")
}

// MonthKey renders the date's month as YYYY-MM.
func (d Date) MonthKey() string {
	return d.Format("2006-01")
}

// ValidMonthKey reports whether s is a well-formed YYYY-MM month key.
func ValidMonthKey(s string) bool {
	_, err := time.Parse("2006-01", s)
	return err == nil
}
