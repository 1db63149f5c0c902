package core

import (
	"testing"
	"time"
)

func aggTxn(id, accountID, categoryID string, date Date, cents int64) Transaction {
	return Transaction{
		ID:          id,
		WorkspaceID: "ws-1",
		AccountID:   accountID,
		CategoryID:  categoryID,
		Date:        date,
		Description: id,
		Amount:      Money{Cents: cents},
		CreatedAt:   time.Now(),
	}
}

var aggCategories = []Category{
	{ID: "cat-groceries", WorkspaceID: "ws-1", Name: "Groceries", Kind: KindExpense},
	{ID: "cat-salary", WorkspaceID: "ws-1", Name: "Salary", Kind: KindIncome},
}

func TestGroupByAccount(t *testing.T) {
	txns := []Transaction{
		aggTxn("1", "acc-a", "", NewDate(2024, 1, 1), -100),
		aggTxn("2", "acc-b", "", NewDate(2024, 1, 2), -200),
		aggTxn("3", "acc-a", "", NewDate(2024, 1, 3), -300),
	}

	grouped := GroupByAccount(txns)

	if len(grouped) != 2 {
		t.Fatalf("groups = %d, want 2", len(grouped))
	}
	if got := grouped["acc-a"]; len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Errorf("acc-a group = %+v, want input order [1 3]", got)
	}
	if got := grouped["acc-b"]; len(got) != 1 || got[0].ID != "2" {
		t.Errorf("acc-b group = %+v, want [2]", got)
	}
}

func TestCategoryLabel(t *testing.T) {
	tests := []struct {
		name       string
		categoryID string
		want       string
	}{
		{"expense category", "cat-groceries", "expense: Groceries"},
		{"income category", "cat-salary", "income: Salary"},
		{"no reference", "", UncategorizedLabel},
		{"dangling reference", "cat-missing", UncategorizedLabel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := aggTxn("1", "acc-a", tt.categoryID, NewDate(2024, 1, 1), -100)
			if got := CategoryLabel(txn, aggCategories); got != tt.want {
				t.Errorf("CategoryLabel = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGroupByCategory(t *testing.T) {
	txns := []Transaction{
		aggTxn("1", "acc-a", "cat-groceries", NewDate(2024, 1, 1), -100),
		aggTxn("2", "acc-a", "cat-salary", NewDate(2024, 1, 2), 500),
		aggTxn("3", "acc-b", "cat-groceries", NewDate(2024, 1, 3), -200),
		aggTxn("4", "acc-b", "", NewDate(2024, 1, 4), -50),
	}

	groups := GroupByCategory(txns, aggCategories)

	wantLabels := []string{"expense: Groceries", "income: Salary", UncategorizedLabel}
	if len(groups) != len(wantLabels) {
		t.Fatalf("groups = %d, want %d", len(groups), len(wantLabels))
	}
	for i, want := range wantLabels {
		if groups[i].Label != want {
			t.Errorf("groups[%d].Label = %q, want %q", i, groups[i].Label, want)
		}
	}
	if len(groups[0].Transactions) != 2 {
		t.Errorf("groceries group size = %d, want 2", len(groups[0].Transactions))
	}
}

func TestGroupByCategoryIgnoresCategoryLoadOrder(t *testing.T) {
	txns := []Transaction{
		aggTxn("1", "acc-a", "cat-salary", NewDate(2024, 1, 1), 500),
		aggTxn("2", "acc-a", "cat-groceries", NewDate(2024, 1, 2), -100),
	}
	reversed := []Category{aggCategories[1], aggCategories[0]}

	a := GroupByCategory(txns, aggCategories)
	b := GroupByCategory(txns, reversed)

	if len(a) != len(b) {
		t.Fatalf("group counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Label != b[i].Label {
			t.Errorf("label order depends on category load order: %q vs %q", a[i].Label, b[i].Label)
		}
	}
}
