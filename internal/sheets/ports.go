package sheets

import (
	"context"

	"finbook/internal/core"
)

// Row is one exported transaction in the shape the bookkeeping sheet expects.
type Row struct {
	TransactionID string
	WorkspaceID   string
	Date          core.Date
	Description   string
	Amount        core.Money
	AccountName   string
	Currency      string
	CategoryLabel string
}

// Ports for outbound adapters.
type (
	// TransactionWriter appends an exported transaction to the sheet.
	TransactionWriter interface {
		Append(ctx context.Context, row Row) (rowRef string, err error)
	}
)
