package core

import "sort"

// Default display windows observed in the product: 25 rows for a per-account
// drill-down, 10 for the multi-account summary view.
const (
	DefaultStatementRows = 25
	SummaryStatementRows = 10
)

// StatementRow is a transaction annotated with the balance immediately after
// it, in chronological order.
type StatementRow struct {
	Transaction
	Running Money
}

// BalanceSource records where a statement's headline balance came from.
type BalanceSource string

const (
	// BalanceLocal means the headline balance was reconstructed from the
	// opening balance and the transactions supplied to the builder.
	BalanceLocal BalanceSource = "local"
	// BalanceReported means an authoritative aggregate supplied the headline
	// figure; per-row running balances remain locally computed and the two
	// may legitimately diverge when the local window is bounded.
	BalanceReported BalanceSource = "reported"
)

// Statement is the derived ledger view for one account.
type Statement struct {
	Account Account
	// Ledger holds every supplied transaction in canonical ascending order
	// (date, then created_at) with running balances attached.
	Ledger []StatementRow
	// Display holds the same annotated rows newest-first, truncated to the
	// requested window. Truncation happens after balance computation.
	Display []StatementRow
	// CurrentBalance is the headline figure for the account.
	CurrentBalance Money
	BalanceSource  BalanceSource
}

// StatementOptions tunes BuildStatement.
type StatementOptions struct {
	// MaxRows bounds the Display slice. Zero or negative means
	// DefaultStatementRows.
	MaxRows int
	// ReportedBalance, when set, is an authoritative current balance from the
	// aggregation layer and wins over the locally reconstructed value for the
	// headline figure.
	ReportedBalance *Money
}

// BuildStatement reconstructs an account's running-balance ledger from its
// opening balance and an unordered transaction list.
//
// The canonical accumulation order is date ascending with created_at breaking
// same-day ties (earliest first); the sort is stable, so fully tied rows keep
// their input order. Each row's running balance equals the opening balance
// plus the sum of all signed amounts up to and including that row. The display
// list is the annotated ledger re-sorted newest-first and truncated last, so
// rows outside the window still contribute to the balances of the rows inside
// it.
func BuildStatement(account Account, txns []Transaction, opts StatementOptions) Statement {
	maxRows := opts.MaxRows
	if maxRows <= 0 {
		maxRows = DefaultStatementRows
	}

	asc := make([]Transaction, len(txns))
	copy(asc, txns)
	sort.SliceStable(asc, func(i, j int) bool {
		return transactionLess(asc[i], asc[j])
	})

	ledger := make([]StatementRow, len(asc))
	running := account.OpeningBalance
	for i, t := range asc {
		running = running.Add(t.Amount)
		ledger[i] = StatementRow{Transaction: t, Running: running}
	}

	// Re-sort the annotated rows; running balances are carried over, never
	// recomputed.
	display := make([]StatementRow, len(ledger))
	copy(display, ledger)
	sort.SliceStable(display, func(i, j int) bool {
		return transactionLess(display[j].Transaction, display[i].Transaction)
	})
	if len(display) > maxRows {
		display = display[:maxRows]
	}

	local := account.OpeningBalance
	if len(ledger) > 0 {
		local = ledger[len(ledger)-1].Running
	}

	st := Statement{
		Account:        account,
		Ledger:         ledger,
		Display:        display,
		CurrentBalance: local,
		BalanceSource:  BalanceLocal,
	}
	if opts.ReportedBalance != nil {
		st.CurrentBalance = *opts.ReportedBalance
		st.BalanceSource = BalanceReported
	}
	return st
}

// transactionLess orders by calendar date, then creation timestamp. It defines
// the unique accumulation order independent of backend query order.
func transactionLess(a, b Transaction) bool {
	if !a.Date.Equal(b.Date.Time) {
		return a.Date.Before(b.Date.Time)
	}
	return a.CreatedAt.Before(b.CreatedAt)
}
