package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"finbook/internal/amqp"
	"finbook/internal/core"
	storagemem "finbook/internal/storage/memory"

	sheetsmem "finbook/internal/sheets/memory"
)

func seedExportData(t *testing.T, store *storagemem.Store, n int) []core.Transaction {
	t.Helper()
	ctx := context.Background()

	w := core.Workspace{ID: "ws-1", Name: "Household", CreatedAt: time.Now()}
	if err := store.CreateWorkspace(ctx, w); err != nil {
		t.Fatal(err)
	}
	a := core.Account{ID: "acc-1", WorkspaceID: w.ID, Name: "Checking", Kind: core.AccountBank, Currency: "EUR", CreatedAt: time.Now()}
	if err := store.CreateAccount(ctx, a); err != nil {
		t.Fatal(err)
	}
	c := core.Category{ID: "cat-1", WorkspaceID: w.ID, Name: "Groceries", Kind: core.KindExpense, CreatedAt: time.Now()}
	if err := store.CreateCategory(ctx, c); err != nil {
		t.Fatal(err)
	}

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	txns := make([]core.Transaction, 0, n)
	for i := 0; i < n; i++ {
		txn := core.Transaction{
			ID:          string(rune('a'+i)) + "-txn",
			WorkspaceID: w.ID,
			AccountID:   a.ID,
			CategoryID:  c.ID,
			Date:        core.NewDate(2026, 3, 1+i),
			Description: "entry",
			Amount:      core.Money{Cents: -1000},
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}
		if err := store.CreateTransaction(ctx, txn); err != nil {
			t.Fatal(err)
		}
		txns = append(txns, txn)
	}
	return txns
}

func TestExportWorker_HandleExportMessage(t *testing.T) {
	store := storagemem.New()
	txns := seedExportData(t, store, 1)
	sheet := sheetsmem.New()
	w := NewExportWorker(store, sheet, 10)
	ctx := context.Background()

	msg := amqp.NewTransactionExportMessage("ws-1", txns[0].ID, 1)
	if err := w.HandleExportMessage(ctx, msg); err != nil {
		t.Fatalf("HandleExportMessage: %v", err)
	}

	rows := sheet.Rows()
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}
	row := rows[0]
	if row.TransactionID != txns[0].ID {
		t.Errorf("TransactionID = %s, want %s", row.TransactionID, txns[0].ID)
	}
	if row.AccountName != "Checking" || row.Currency != "EUR" {
		t.Errorf("account fields = %s/%s, want Checking/EUR", row.AccountName, row.Currency)
	}
	if row.CategoryLabel != "expense: Groceries" {
		t.Errorf("CategoryLabel = %q, want %q", row.CategoryLabel, "expense: Groceries")
	}

	// The row is now flagged; catch-up must not re-export it.
	if err := w.CatchUp(ctx); err != nil {
		t.Fatalf("CatchUp: %v", err)
	}
	if got := len(sheet.Rows()); got != 1 {
		t.Errorf("rows after catch-up = %d, want 1", got)
	}
}

func TestExportWorker_HandleExportMessage_DeletedTransaction(t *testing.T) {
	store := storagemem.New()
	seedExportData(t, store, 1)
	sheet := sheetsmem.New()
	w := NewExportWorker(store, sheet, 10)

	msg := amqp.NewTransactionExportMessage("ws-1", "gone", 1)
	if err := w.HandleExportMessage(context.Background(), msg); err != nil {
		t.Fatalf("deleted transaction should be dropped without error, got %v", err)
	}
	if len(sheet.Rows()) != 0 {
		t.Error("nothing should be appended for a missing transaction")
	}
}

func TestExportWorker_CatchUp(t *testing.T) {
	store := storagemem.New()
	txns := seedExportData(t, store, 5)
	sheet := sheetsmem.New()
	w := NewExportWorker(store, sheet, 2) // force multiple batches

	if err := w.CatchUp(context.Background()); err != nil {
		t.Fatalf("CatchUp: %v", err)
	}

	rows := sheet.Rows()
	if len(rows) != len(txns) {
		t.Fatalf("exported %d rows, want %d", len(rows), len(txns))
	}
	// Oldest first.
	if rows[0].TransactionID != txns[0].ID {
		t.Errorf("first exported = %s, want %s", rows[0].TransactionID, txns[0].ID)
	}

	// Second run is a no-op.
	if err := w.CatchUp(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := len(sheet.Rows()); got != len(txns) {
		t.Errorf("rows after second catch-up = %d, want %d", got, len(txns))
	}
}

func TestExportWorker_CatchUp_WriterFailure(t *testing.T) {
	store := storagemem.New()
	seedExportData(t, store, 2)
	sheet := sheetsmem.New()
	sheet.AppendErr = errors.New("sheet unavailable")
	w := NewExportWorker(store, sheet, 10)

	if err := w.CatchUp(context.Background()); err == nil {
		t.Fatal("CatchUp should surface writer errors")
	}

	// Nothing was marked, so a later run still sees the rows.
	sheet.AppendErr = nil
	if err := w.CatchUp(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := len(sheet.Rows()); got != 2 {
		t.Errorf("rows after recovery = %d, want 2", got)
	}
}
