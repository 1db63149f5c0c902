package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"finbook/internal/core"
	"finbook/internal/storage/memory"
)

func seedStatementData(t *testing.T, store *memory.Store) (wsID string, accounts []core.Account) {
	t.Helper()
	ctx := context.Background()

	w := core.Workspace{ID: "ws-1", Name: "Household", CreatedAt: time.Now()}
	if err := store.CreateWorkspace(ctx, w); err != nil {
		t.Fatal(err)
	}

	checking := core.Account{ID: "acc-chk", WorkspaceID: w.ID, Name: "Checking", Kind: core.AccountBank, Currency: "EUR", OpeningBalance: core.Money{Cents: 10000}, CreatedAt: time.Now()}
	savings := core.Account{ID: "acc-sav", WorkspaceID: w.ID, Name: "Savings", Kind: core.AccountBank, Currency: "EUR", OpeningBalance: core.Money{Cents: 50000}, CreatedAt: time.Now()}
	for _, a := range []core.Account{checking, savings} {
		if err := store.CreateAccount(ctx, a); err != nil {
			t.Fatal(err)
		}
	}

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	txns := []core.Transaction{
		{ID: "t-1", WorkspaceID: w.ID, AccountID: checking.ID, Date: core.NewDate(2026, 3, 1), Description: "groceries", Amount: core.Money{Cents: -2000}, CreatedAt: base},
		{ID: "t-2", WorkspaceID: w.ID, AccountID: checking.ID, Date: core.NewDate(2026, 3, 2), Description: "salary", Amount: core.Money{Cents: 5000}, CreatedAt: base.Add(time.Hour)},
		{ID: "t-3", WorkspaceID: w.ID, AccountID: checking.ID, Date: core.NewDate(2026, 3, 2), Description: "coffee", Amount: core.Money{Cents: -500}, CreatedAt: base.Add(2 * time.Hour)},
		{ID: "t-4", WorkspaceID: w.ID, AccountID: savings.ID, Date: core.NewDate(2026, 3, 3), Description: "deposit", Amount: core.Money{Cents: 10000}, CreatedAt: base.Add(3 * time.Hour)},
	}
	for _, txn := range txns {
		if err := store.CreateTransaction(ctx, txn); err != nil {
			t.Fatal(err)
		}
	}
	return w.ID, []core.Account{checking, savings}
}

func TestStatementService_AccountStatement(t *testing.T) {
	store := memory.New()
	wsID, accounts := seedStatementData(t, store)
	svc := NewStatementService(store)
	ctx := context.Background()

	st, err := svc.AccountStatement(ctx, wsID, accounts[0].ID, 0)
	if err != nil {
		t.Fatalf("AccountStatement: %v", err)
	}

	if len(st.Ledger) != 3 {
		t.Fatalf("len(Ledger) = %d, want 3", len(st.Ledger))
	}
	wantRunning := []int64{8000, 13000, 12500}
	for i, w := range wantRunning {
		if st.Ledger[i].Running.Cents != w {
			t.Errorf("Ledger[%d].Running = %d, want %d", i, st.Ledger[i].Running.Cents, w)
		}
	}
	if st.Display[0].ID != "t-3" {
		t.Errorf("Display[0].ID = %s, want t-3 (newest first)", st.Display[0].ID)
	}
	if st.BalanceSource != core.BalanceReported {
		t.Errorf("BalanceSource = %s, want reported", st.BalanceSource)
	}
	if st.CurrentBalance.Cents != 12500 {
		t.Errorf("CurrentBalance = %d, want 12500", st.CurrentBalance.Cents)
	}
}

func TestStatementService_AccountStatement_UnknownAccount(t *testing.T) {
	store := memory.New()
	wsID, _ := seedStatementData(t, store)
	svc := NewStatementService(store)

	if _, err := svc.AccountStatement(context.Background(), wsID, "nope", 0); err == nil {
		t.Error("expected error for unknown account")
	}
}

func TestStatementService_WorkspaceStatements(t *testing.T) {
	store := memory.New()
	wsID, accounts := seedStatementData(t, store)
	svc := NewStatementService(store)

	statements, err := svc.WorkspaceStatements(context.Background(), wsID)
	if err != nil {
		t.Fatalf("WorkspaceStatements: %v", err)
	}
	if len(statements) != 2 {
		t.Fatalf("len = %d, want 2", len(statements))
	}
	// Alphabetical account order.
	if statements[0].Account.ID != accounts[0].ID || statements[1].Account.ID != accounts[1].ID {
		t.Errorf("statement order = [%s %s], want [%s %s]",
			statements[0].Account.ID, statements[1].Account.ID, accounts[0].ID, accounts[1].ID)
	}
	if statements[1].CurrentBalance.Cents != 60000 {
		t.Errorf("savings balance = %d, want 60000", statements[1].CurrentBalance.Cents)
	}
}

func TestStatementService_WorkspaceStatements_SummaryWindow(t *testing.T) {
	store := memory.New()
	wsID, accounts := seedStatementData(t, store)
	svc := NewStatementService(store)
	ctx := context.Background()

	// Push the checking account well past the summary window.
	base := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 20; i++ {
		txn := core.Transaction{
			ID:          fmt.Sprintf("bulk-%d", i),
			WorkspaceID: wsID,
			AccountID:   accounts[0].ID,
			Date:        core.NewDate(2026, 4, 1+i%28),
			Description: "bulk entry",
			Amount:      core.Money{Cents: -100},
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}
		if err := store.CreateTransaction(ctx, txn); err != nil {
			t.Fatal(err)
		}
	}

	statements, err := svc.WorkspaceStatements(ctx, wsID)
	if err != nil {
		t.Fatalf("WorkspaceStatements: %v", err)
	}
	checking := statements[0]
	if len(checking.Display) != core.SummaryStatementRows {
		t.Errorf("len(Display) = %d, want %d", len(checking.Display), core.SummaryStatementRows)
	}
	if len(checking.Ledger) != 23 {
		t.Errorf("len(Ledger) = %d, want 23", len(checking.Ledger))
	}
	// Truncation must not shift balances: headline still covers all rows.
	if checking.CurrentBalance.Cents != 12500-2000 {
		t.Errorf("CurrentBalance = %d, want %d", checking.CurrentBalance.Cents, 12500-2000)
	}
}

func TestStatementService_NetWorth(t *testing.T) {
	store := memory.New()
	wsID, _ := seedStatementData(t, store)
	svc := NewStatementService(store)

	nw, err := svc.NetWorth(context.Background(), wsID)
	if err != nil {
		t.Fatalf("NetWorth: %v", err)
	}
	if nw.Total.Cents != 12500+60000 {
		t.Errorf("Total = %d, want %d", nw.Total.Cents, 12500+60000)
	}
	if len(nw.Accounts) != 2 {
		t.Errorf("len(Accounts) = %d, want 2", len(nw.Accounts))
	}
}
