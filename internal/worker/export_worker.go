// Package worker exports transactions from local storage to the bookkeeping
// sheet, driven by AMQP messages with a polling catch-up for lost deliveries.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"finbook/internal/amqp"
	"finbook/internal/sheets"
	"finbook/internal/storage"
)

// ExportStore is the slice of the repository the worker needs.
type ExportStore interface {
	GetExportRow(ctx context.Context, workspaceID, transactionID string) (storage.ExportRow, error)
	ListUnexported(ctx context.Context, limit int) ([]storage.ExportRow, error)
	MarkExported(ctx context.Context, transactionID string) error
}

type ExportWorker struct {
	store     ExportStore
	writer    sheets.TransactionWriter
	batchSize int
}

func NewExportWorker(store ExportStore, writer sheets.TransactionWriter, batchSize int) *ExportWorker {
	if batchSize <= 0 {
		batchSize = 50
	}
	return &ExportWorker{store: store, writer: writer, batchSize: batchSize}
}

// HandleExportMessage processes one export notification. The message only
// names the transaction; the current row is always re-read from storage, so
// repeated versions of the same transaction export its latest state.
func (w *ExportWorker) HandleExportMessage(ctx context.Context, msg *amqp.TransactionExportMessage) error {
	slog.InfoContext(ctx, "Processing export message",
		"workspace_id", msg.WorkspaceID,
		"transaction_id", msg.TransactionID,
		"version", msg.Version)

	row, err := w.store.GetExportRow(ctx, msg.WorkspaceID, msg.TransactionID)
	if errors.Is(err, storage.ErrNotFound) {
		// Deleted before the worker got to it. Nothing to export.
		slog.WarnContext(ctx, "Transaction gone before export, dropping message",
			"transaction_id", msg.TransactionID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("get export row: %w", err)
	}

	return w.export(ctx, row)
}

// CatchUp exports everything still flagged unexported, in batches. Runs at
// worker startup so rows written during a broker outage still reach the sheet.
func (w *ExportWorker) CatchUp(ctx context.Context) error {
	for {
		pending, err := w.store.ListUnexported(ctx, w.batchSize)
		if err != nil {
			return fmt.Errorf("list unexported: %w", err)
		}
		if len(pending) == 0 {
			return nil
		}

		slog.InfoContext(ctx, "Catching up unexported transactions", "count", len(pending))

		for _, row := range pending {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := w.export(ctx, row); err != nil {
				return err
			}
		}

		if len(pending) < w.batchSize {
			return nil
		}
	}
}

func (w *ExportWorker) export(ctx context.Context, row storage.ExportRow) error {
	ref, err := w.writer.Append(ctx, sheets.Row{
		TransactionID: row.TransactionID,
		WorkspaceID:   row.WorkspaceID,
		Date:          row.Date,
		Description:   row.Description,
		Amount:        row.Amount,
		AccountName:   row.AccountName,
		Currency:      row.Currency,
		CategoryLabel: row.CategoryLabel,
	})
	if err != nil {
		return fmt.Errorf("append to sheet: %w", err)
	}

	if err := w.store.MarkExported(ctx, row.TransactionID); err != nil {
		// The row reached the sheet but is still flagged. The next catch-up
		// will append it again; the sheet dedupes on the transaction id column
		// during reconciliation.
		return fmt.Errorf("mark exported: %w", err)
	}

	slog.InfoContext(ctx, "Exported transaction",
		"transaction_id", row.TransactionID,
		"row_ref", ref)
	return nil
}
