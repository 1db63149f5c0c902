package http

import (
	"time"

	"finbook/internal/core"
	"finbook/internal/services"
	"finbook/internal/storage"
)

// Wire representations. Amounts travel as integer cents plus a formatted
// string so clients never re-derive rounding.

type workspacePayload struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type accountPayload struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Kind           string    `json:"kind"`
	Currency       string    `json:"currency"`
	OpeningCents   int64     `json:"opening_balance_cents"`
	OpeningDisplay string    `json:"opening_balance"`
	CreatedAt      time.Time `json:"created_at"`
}

type categoryPayload struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
}

type transactionPayload struct {
	ID            string    `json:"id"`
	AccountID     string    `json:"account_id"`
	CategoryID    string    `json:"category_id,omitempty"`
	Date          string    `json:"date"`
	Description   string    `json:"description"`
	AmountCents   int64     `json:"amount_cents"`
	AmountDisplay string    `json:"amount"`
	CreatedAt     time.Time `json:"created_at"`
}

type statementRowPayload struct {
	transactionPayload
	RunningCents   int64  `json:"running_cents"`
	RunningDisplay string `json:"running"`
}

type statementPayload struct {
	Account       accountPayload        `json:"account"`
	Rows          []statementRowPayload `json:"rows"`
	BalanceCents  int64                 `json:"balance_cents"`
	Balance       string                `json:"balance"`
	BalanceSource string                `json:"balance_source"`
}

type balancePayload struct {
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
	Currency    string `json:"currency"`
	Cents       int64  `json:"balance_cents"`
	Display     string `json:"balance"`
}

type netWorthPayload struct {
	TotalCents int64            `json:"total_cents"`
	Total      string           `json:"total"`
	Accounts   []balancePayload `json:"accounts"`
}

type monthSummaryPayload struct {
	Month        string `json:"month"`
	IncomeCents  int64  `json:"income_cents"`
	ExpenseCents int64  `json:"expense_cents"`
	NetCents     int64  `json:"net_cents"`
}

type categoryTotalPayload struct {
	Label      string `json:"label"`
	TotalCents int64  `json:"total_cents"`
	Total      string `json:"total"`
}

type budgetLinePayload struct {
	CategoryID     string `json:"category_id"`
	CategoryLabel  string `json:"category_label"`
	PlannedCents   int64  `json:"planned_cents"`
	ActualCents    int64  `json:"actual_cents"`
	RemainingCents int64  `json:"remaining_cents"`
	OverBudget     bool   `json:"over_budget"`
}

func toWorkspacePayload(w core.Workspace) workspacePayload {
	return workspacePayload{ID: w.ID, Name: w.Name, CreatedAt: w.CreatedAt}
}

func toAccountPayload(a core.Account) accountPayload {
	return accountPayload{
		ID:             a.ID,
		Name:           a.Name,
		Kind:           string(a.Kind),
		Currency:       a.Currency,
		OpeningCents:   a.OpeningBalance.Cents,
		OpeningDisplay: core.FormatMoney(a.OpeningBalance, a.Currency),
		CreatedAt:      a.CreatedAt,
	}
}

func toCategoryPayload(c core.Category) categoryPayload {
	return categoryPayload{
		ID:        c.ID,
		Name:      c.Name,
		Kind:      string(c.Kind),
		Label:     string(c.Kind) + ": " + c.Name,
		CreatedAt: c.CreatedAt,
	}
}

func toTransactionPayload(t core.Transaction) transactionPayload {
	return transactionPayload{
		ID:            t.ID,
		AccountID:     t.AccountID,
		CategoryID:    t.CategoryID,
		Date:          t.Date.ISO(),
		Description:   t.Description,
		AmountCents:   t.Amount.Cents,
		AmountDisplay: t.Amount.String(),
		CreatedAt:     t.CreatedAt,
	}
}

func toStatementPayload(st core.Statement) statementPayload {
	rows := make([]statementRowPayload, 0, len(st.Display))
	for _, row := range st.Display {
		rows = append(rows, statementRowPayload{
			transactionPayload: toTransactionPayload(row.Transaction),
			RunningCents:       row.Running.Cents,
			RunningDisplay:     core.FormatMoney(row.Running, st.Account.Currency),
		})
	}
	return statementPayload{
		Account:       toAccountPayload(st.Account),
		Rows:          rows,
		BalanceCents:  st.CurrentBalance.Cents,
		Balance:       core.FormatMoney(st.CurrentBalance, st.Account.Currency),
		BalanceSource: string(st.BalanceSource),
	}
}

func toNetWorthPayload(nw services.NetWorth) netWorthPayload {
	accounts := make([]balancePayload, 0, len(nw.Accounts))
	for _, b := range nw.Accounts {
		accounts = append(accounts, toBalancePayload(b))
	}
	return netWorthPayload{
		TotalCents: nw.Total.Cents,
		Total:      nw.Total.String(),
		Accounts:   accounts,
	}
}

func toBalancePayload(b storage.AccountBalance) balancePayload {
	return balancePayload{
		AccountID:   b.AccountID,
		AccountName: b.AccountName,
		Currency:    b.Currency,
		Cents:       b.Balance.Cents,
		Display:     core.FormatMoney(b.Balance, b.Currency),
	}
}

func toMonthSummaryPayload(m core.MonthSummary) monthSummaryPayload {
	return monthSummaryPayload{
		Month:        m.Month,
		IncomeCents:  m.Income.Cents,
		ExpenseCents: m.Expense.Cents,
		NetCents:     m.Net.Cents,
	}
}

func toCategoryTotalPayload(t core.CategoryTotal) categoryTotalPayload {
	return categoryTotalPayload{
		Label:      t.Label,
		TotalCents: t.Total.Cents,
		Total:      t.Total.String(),
	}
}

func toBudgetLinePayload(l services.BudgetLine) budgetLinePayload {
	return budgetLinePayload{
		CategoryID:     l.Category.ID,
		CategoryLabel:  string(l.Category.Kind) + ": " + l.Category.Name,
		PlannedCents:   l.Planned.Cents,
		ActualCents:    l.Actual.Cents,
		RemainingCents: l.Remaining.Cents,
		OverBudget:     l.Remaining.Cents < 0,
	}
}
