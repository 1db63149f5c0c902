// Package memory holds an in-memory repository used by tests and by local
// runs without a database file. It mirrors the SQLite repository's behavior,
// including workspace scoping and full-history balance sums.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"finbook/internal/core"
	"finbook/internal/storage"
)

type Store struct {
	mu         sync.Mutex
	workspaces map[string]core.Workspace
	accounts   map[string]core.Account
	categories map[string]core.Category
	txns       map[string]core.Transaction
	budgets    map[string]core.BudgetRow // key workspace|month|category
	exported   map[string]bool
}

func New() *Store {
	return &Store{
		workspaces: map[string]core.Workspace{},
		accounts:   map[string]core.Account{},
		categories: map[string]core.Category{},
		txns:       map[string]core.Transaction{},
		budgets:    map[string]core.BudgetRow{},
		exported:   map[string]bool{},
	}
}

func (s *Store) Close() error { return nil }

// ---- Workspaces ----

func (s *Store) CreateWorkspace(_ context.Context, w core.Workspace) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workspaces[w.ID] = w
	return nil
}

func (s *Store) GetWorkspace(_ context.Context, id string) (core.Workspace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.workspaces[id]
	if !ok {
		return core.Workspace{}, storage.ErrNotFound
	}
	return w, nil
}

func (s *Store) ListWorkspaces(_ context.Context) ([]core.Workspace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Workspace, 0, len(s.workspaces))
	for _, w := range s.workspaces {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) RenameWorkspace(_ context.Context, id, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.workspaces[id]
	if !ok {
		return storage.ErrNotFound
	}
	w.Name = name
	s.workspaces[id] = w
	return nil
}

// ---- Accounts ----

func (s *Store) CreateAccount(_ context.Context, a core.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[a.ID] = a
	return nil
}

func (s *Store) GetAccount(_ context.Context, workspaceID, id string) (core.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok || a.WorkspaceID != workspaceID {
		return core.Account{}, storage.ErrNotFound
	}
	return a, nil
}

func (s *Store) ListAccounts(_ context.Context, workspaceID string) ([]core.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []core.Account
	for _, a := range s.accounts {
		if a.WorkspaceID == workspaceID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) UpdateAccount(_ context.Context, a core.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.accounts[a.ID]
	if !ok || prev.WorkspaceID != a.WorkspaceID {
		return storage.ErrNotFound
	}
	a.CreatedAt = prev.CreatedAt
	s.accounts[a.ID] = a
	return nil
}

// DeleteAccount cascades to the account's transactions, matching the SQLite
// schema's ON DELETE CASCADE.
func (s *Store) DeleteAccount(_ context.Context, workspaceID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok || a.WorkspaceID != workspaceID {
		return storage.ErrNotFound
	}
	delete(s.accounts, id)
	for txnID, t := range s.txns {
		if t.AccountID == id {
			delete(s.txns, txnID)
			delete(s.exported, txnID)
		}
	}
	return nil
}

// ---- Categories ----

func (s *Store) CreateCategory(_ context.Context, c core.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories[c.ID] = c
	return nil
}

func (s *Store) GetCategory(_ context.Context, workspaceID, id string) (core.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.categories[id]
	if !ok || c.WorkspaceID != workspaceID {
		return core.Category{}, storage.ErrNotFound
	}
	return c, nil
}

func (s *Store) ListCategories(_ context.Context, workspaceID string) ([]core.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []core.Category
	for _, c := range s.categories {
		if c.WorkspaceID == workspaceID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (s *Store) UpdateCategory(_ context.Context, c core.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.categories[c.ID]
	if !ok || prev.WorkspaceID != c.WorkspaceID {
		return storage.ErrNotFound
	}
	c.CreatedAt = prev.CreatedAt
	s.categories[c.ID] = c
	return nil
}

// DeleteCategory clears the reference on transactions, matching ON DELETE SET NULL.
func (s *Store) DeleteCategory(_ context.Context, workspaceID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.categories[id]
	if !ok || c.WorkspaceID != workspaceID {
		return storage.ErrNotFound
	}
	delete(s.categories, id)
	for txnID, t := range s.txns {
		if t.CategoryID == id {
			t.CategoryID = ""
			s.txns[txnID] = t
		}
	}
	return nil
}

// ---- Transactions ----

func (s *Store) CreateTransaction(_ context.Context, t core.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txns[t.ID] = t
	return nil
}

func (s *Store) GetTransaction(_ context.Context, workspaceID, id string) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.txns[id]
	if !ok || t.WorkspaceID != workspaceID {
		return core.Transaction{}, storage.ErrNotFound
	}
	return t, nil
}

func (s *Store) ListTransactions(_ context.Context, workspaceID string, f storage.TransactionFilter) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []core.Transaction
	for _, t := range s.txns {
		if t.WorkspaceID != workspaceID {
			continue
		}
		if f.AccountID != "" && t.AccountID != f.AccountID {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date.Time) {
			return out[i].Date.After(out[j].Date.Time)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	limit := f.Limit
	if limit <= 0 {
		limit = storage.DefaultTransactionWindow
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) UpdateTransaction(_ context.Context, t core.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.txns[t.ID]
	if !ok || prev.WorkspaceID != t.WorkspaceID {
		return storage.ErrNotFound
	}
	t.CreatedAt = prev.CreatedAt
	s.txns[t.ID] = t
	s.exported[t.ID] = false
	return nil
}

func (s *Store) DeleteTransaction(_ context.Context, workspaceID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.txns[id]
	if !ok || t.WorkspaceID != workspaceID {
		return storage.ErrNotFound
	}
	delete(s.txns, id)
	delete(s.exported, id)
	return nil
}

// ---- Aggregates ----

func (s *Store) AccountBalances(_ context.Context, workspaceID string) ([]storage.AccountBalance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sums := map[string]int64{}
	for _, t := range s.txns {
		if t.WorkspaceID == workspaceID {
			sums[t.AccountID] += t.Amount.Cents
		}
	}
	var out []storage.AccountBalance
	for _, a := range s.accounts {
		if a.WorkspaceID != workspaceID {
			continue
		}
		out = append(out, storage.AccountBalance{
			AccountID:   a.ID,
			AccountName: a.Name,
			Currency:    a.Currency,
			Balance:     core.Money{Cents: a.OpeningBalance.Cents + sums[a.ID]},
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AccountName < out[j].AccountName })
	return out, nil
}

func (s *Store) MonthlySummary(_ context.Context, workspaceID string, months int, now time.Time) ([]core.MonthSummary, error) {
	s.mu.Lock()
	txns := s.workspaceTransactions(workspaceID)
	s.mu.Unlock()

	var out []core.MonthSummary
	for _, m := range core.SummarizeMonths(txns, months, now) {
		if m.Income.Cents != 0 || m.Expense.Cents != 0 {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *Store) TopCategoriesForMonth(_ context.Context, workspaceID, monthKey string, limit int) ([]core.CategoryTotal, error) {
	s.mu.Lock()
	txns := s.workspaceTransactions(workspaceID)
	var cats []core.Category
	for _, c := range s.categories {
		if c.WorkspaceID == workspaceID {
			cats = append(cats, c)
		}
	}
	s.mu.Unlock()
	return core.TopCategoriesForMonth(txns, cats, monthKey, limit), nil
}

// ---- Budgets ----

func (s *Store) UpsertBudgetRows(_ context.Context, workspaceID, month string, rows []core.BudgetRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range rows {
		row.WorkspaceID = workspaceID
		row.Month = month
		s.budgets[workspaceID+"|"+month+"|"+row.CategoryID] = row
	}
	return nil
}

func (s *Store) ListBudgetRows(_ context.Context, workspaceID, month string) ([]core.BudgetRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []core.BudgetRow
	for _, b := range s.budgets {
		if b.WorkspaceID == workspaceID && b.Month == month {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CategoryID < out[j].CategoryID })
	return out, nil
}

// ---- Export tracking ----

func (s *Store) ListUnexported(_ context.Context, limit int) ([]storage.ExportRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if limit <= 0 {
		limit = 100
	}
	var pending []core.Transaction
	for id, t := range s.txns {
		if !s.exported[id] {
			pending = append(pending, t)
		}
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].CreatedAt.Before(pending[j].CreatedAt) })
	if len(pending) > limit {
		pending = pending[:limit]
	}
	out := make([]storage.ExportRow, 0, len(pending))
	for _, t := range pending {
		out = append(out, s.exportRowLocked(t))
	}
	return out, nil
}

func (s *Store) GetExportRow(_ context.Context, workspaceID, txnID string) (storage.ExportRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.txns[txnID]
	if !ok || t.WorkspaceID != workspaceID {
		return storage.ExportRow{}, storage.ErrNotFound
	}
	return s.exportRowLocked(t), nil
}

func (s *Store) MarkExported(_ context.Context, txnID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exported[txnID] = true
	return nil
}

func (s *Store) workspaceTransactions(workspaceID string) []core.Transaction {
	var out []core.Transaction
	for _, t := range s.txns {
		if t.WorkspaceID == workspaceID {
			out = append(out, t)
		}
	}
	return out
}

func (s *Store) exportRowLocked(t core.Transaction) storage.ExportRow {
	row := storage.ExportRow{
		TransactionID: t.ID,
		WorkspaceID:   t.WorkspaceID,
		Date:          t.Date,
		Description:   t.Description,
		Amount:        t.Amount,
		CategoryLabel: core.UncategorizedLabel,
	}
	if a, ok := s.accounts[t.AccountID]; ok {
		row.AccountName = a.Name
		row.Currency = a.Currency
	}
	if c, ok := s.categories[t.CategoryID]; ok {
		row.CategoryLabel = string(c.Kind) + ": " + c.Name
	}
	return row
}
