package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"finbook/internal/core"
	"finbook/internal/storage"
	"finbook/internal/storage/memory"
)

type capturedExport struct {
	workspaceID   string
	transactionID string
	version       int64
}

type fakePublisher struct {
	published []capturedExport
	err       error
}

func (f *fakePublisher) PublishTransactionExport(_ context.Context, workspaceID, transactionID string, version int64) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, capturedExport{workspaceID, transactionID, version})
	return nil
}

func seedLedger(t *testing.T, store *memory.Store) (workspaceID, accountID, expenseCatID, incomeCatID string) {
	t.Helper()
	ctx := context.Background()

	w := core.Workspace{ID: "ws-1", Name: "Personal", CreatedAt: time.Now()}
	if err := store.CreateWorkspace(ctx, w); err != nil {
		t.Fatalf("seed workspace: %v", err)
	}
	a := core.Account{ID: "acc-1", WorkspaceID: w.ID, Name: "Checking", Kind: core.AccountBank, Currency: "EUR", OpeningBalance: core.Money{Cents: 10000}, CreatedAt: time.Now()}
	if err := store.CreateAccount(ctx, a); err != nil {
		t.Fatalf("seed account: %v", err)
	}
	groceries := core.Category{ID: "cat-exp", WorkspaceID: w.ID, Name: "Groceries", Kind: core.KindExpense, CreatedAt: time.Now()}
	salary := core.Category{ID: "cat-inc", WorkspaceID: w.ID, Name: "Salary", Kind: core.KindIncome, CreatedAt: time.Now()}
	if err := store.CreateCategory(ctx, groceries); err != nil {
		t.Fatalf("seed category: %v", err)
	}
	if err := store.CreateCategory(ctx, salary); err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return w.ID, a.ID, groceries.ID, salary.ID
}

func TestTransactionService_Create_NormalizesSign(t *testing.T) {
	store := memory.New()
	wsID, accID, expCat, incCat := seedLedger(t, store)
	svc := NewTransactionService(store, &fakePublisher{})
	ctx := context.Background()

	tests := []struct {
		name       string
		categoryID string
		amount     string
		wantCents  int64
	}{
		{"expense forces negative", expCat, "25.50", -2550},
		{"expense strips user minus", expCat, "-25.50", -2550},
		{"income forces positive", incCat, "-100", 10000},
		{"mixed separators coerce to zero", incCat, "1.234,00", 0},
		{"uncategorized keeps negative", "", "-12,34", -1234},
		{"uncategorized keeps positive", "", "+7", 700},
		{"blank amount is zero", expCat, "   ", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn, err := svc.Create(ctx, wsID, TransactionInput{
				AccountID:   accID,
				CategoryID:  tt.categoryID,
				Date:        "2026-03-10",
				Description: "test entry",
				Amount:      tt.amount,
			})
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			if txn.Amount.Cents != tt.wantCents {
				t.Errorf("Amount.Cents = %d, want %d", txn.Amount.Cents, tt.wantCents)
			}
			if txn.ID == "" {
				t.Error("expected generated ID")
			}
		})
	}
}

func TestTransactionService_Create_Validation(t *testing.T) {
	store := memory.New()
	wsID, accID, expCat, _ := seedLedger(t, store)
	svc := NewTransactionService(store, &fakePublisher{})
	ctx := context.Background()

	t.Run("unknown account", func(t *testing.T) {
		_, err := svc.Create(ctx, wsID, TransactionInput{AccountID: "nope", Date: "2026-03-10", Description: "x", Amount: "1"})
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("want ErrNotFound, got %v", err)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := svc.Create(ctx, wsID, TransactionInput{AccountID: accID, CategoryID: "nope", Date: "2026-03-10", Description: "x", Amount: "1"})
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("want ErrNotFound, got %v", err)
		}
	})

	t.Run("bad date", func(t *testing.T) {
		_, err := svc.Create(ctx, wsID, TransactionInput{AccountID: accID, CategoryID: expCat, Date: "10/03/2026", Description: "x", Amount: "1"})
		if !errors.Is(err, core.ErrInvalidDate) {
			t.Errorf("want ErrInvalidDate, got %v", err)
		}
	})

	t.Run("empty description", func(t *testing.T) {
		_, err := svc.Create(ctx, wsID, TransactionInput{AccountID: accID, CategoryID: expCat, Date: "2026-03-10", Description: "  ", Amount: "1"})
		if !errors.Is(err, core.ErrEmptyDescription) {
			t.Errorf("want ErrEmptyDescription, got %v", err)
		}
	})

	t.Run("cross workspace account is invisible", func(t *testing.T) {
		other := core.Workspace{ID: "ws-2", Name: "Other", CreatedAt: time.Now()}
		if err := store.CreateWorkspace(ctx, other); err != nil {
			t.Fatal(err)
		}
		_, err := svc.Create(ctx, other.ID, TransactionInput{AccountID: accID, Date: "2026-03-10", Description: "x", Amount: "1"})
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("want ErrNotFound, got %v", err)
		}
	})
}

func TestTransactionService_Update_RenormalizesAgainstNewCategory(t *testing.T) {
	store := memory.New()
	wsID, accID, expCat, incCat := seedLedger(t, store)
	svc := NewTransactionService(store, &fakePublisher{})
	ctx := context.Background()

	txn, err := svc.Create(ctx, wsID, TransactionInput{
		AccountID: accID, CategoryID: expCat, Date: "2026-03-10", Description: "refunded purchase", Amount: "40",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if txn.Amount.Cents != -4000 {
		t.Fatalf("precondition: Amount.Cents = %d, want -4000", txn.Amount.Cents)
	}

	updated, err := svc.Update(ctx, wsID, txn.ID, TransactionInput{
		AccountID: accID, CategoryID: incCat, Date: "2026-03-10", Description: "refunded purchase", Amount: "40",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Amount.Cents != 4000 {
		t.Errorf("Amount.Cents after category flip = %d, want 4000", updated.Amount.Cents)
	}
	if !updated.CreatedAt.Equal(txn.CreatedAt) {
		t.Errorf("CreatedAt changed across update: %v vs %v", updated.CreatedAt, txn.CreatedAt)
	}
}

func TestTransactionService_Update_BlankAmountKeepsMagnitude(t *testing.T) {
	store := memory.New()
	wsID, accID, expCat, incCat := seedLedger(t, store)
	svc := NewTransactionService(store, &fakePublisher{})
	ctx := context.Background()

	txn, err := svc.Create(ctx, wsID, TransactionInput{
		AccountID: accID, CategoryID: expCat, Date: "2026-03-10", Description: "subscription", Amount: "12.50",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(ctx, wsID, txn.ID, TransactionInput{
		AccountID: accID, CategoryID: incCat, Date: "2026-03-10", Description: "subscription refund", Amount: "",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Amount.Cents != 1250 {
		t.Errorf("Amount.Cents = %d, want stored magnitude re-signed to 1250", updated.Amount.Cents)
	}
}

func TestTransactionService_PublishesExport(t *testing.T) {
	store := memory.New()
	wsID, accID, expCat, _ := seedLedger(t, store)
	pub := &fakePublisher{}
	svc := NewTransactionService(store, pub)
	ctx := context.Background()

	txn, err := svc.Create(ctx, wsID, TransactionInput{
		AccountID: accID, CategoryID: expCat, Date: "2026-03-10", Description: "coffee", Amount: "3.50",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(pub.published) != 1 {
		t.Fatalf("published %d messages, want 1", len(pub.published))
	}
	got := pub.published[0]
	if got.workspaceID != wsID || got.transactionID != txn.ID || got.version != 1 {
		t.Errorf("published %+v, want {%s %s 1}", got, wsID, txn.ID)
	}

	if _, err := svc.Update(ctx, wsID, txn.ID, TransactionInput{
		AccountID: accID, CategoryID: expCat, Date: "2026-03-10", Description: "coffee", Amount: "4.00",
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(pub.published) != 2 || pub.published[1].version != 2 {
		t.Errorf("update publish = %+v, want version 2", pub.published)
	}
}

func TestTransactionService_BrokerFailureDoesNotFailWrite(t *testing.T) {
	store := memory.New()
	wsID, accID, expCat, _ := seedLedger(t, store)
	svc := NewTransactionService(store, &fakePublisher{err: errors.New("connection refused")})
	ctx := context.Background()

	txn, err := svc.Create(ctx, wsID, TransactionInput{
		AccountID: accID, CategoryID: expCat, Date: "2026-03-10", Description: "coffee", Amount: "3.50",
	})
	if err != nil {
		t.Fatalf("Create should succeed despite broker failure: %v", err)
	}
	if _, err := store.GetTransaction(ctx, wsID, txn.ID); err != nil {
		t.Errorf("transaction not persisted: %v", err)
	}
}

func TestTransactionService_NilPublisher(t *testing.T) {
	store := memory.New()
	wsID, accID, _, _ := seedLedger(t, store)
	svc := NewTransactionService(store, nil)

	if _, err := svc.Create(context.Background(), wsID, TransactionInput{
		AccountID: accID, Date: "2026-03-10", Description: "cash top-up", Amount: "20",
	}); err != nil {
		t.Fatalf("Create with nil publisher: %v", err)
	}
}
