// Package storage provides the SQLite-backed repository and its embedded
// schema migrations. Aggregation queries (balances, monthly summaries, top
// categories) live here so derived views read authoritative full-history
// figures rather than bounded client windows.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"finbook/internal/core"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a row does not exist in the workspace scope.
var ErrNotFound = errors.New("not found")

// DefaultTransactionWindow caps bounded transaction fetches. Statements use
// this window for running-balance reconstruction; headline balances come from
// AccountBalances, which always sums full history.
const DefaultTransactionWindow = 2000

// TransactionFilter narrows ListTransactions.
type TransactionFilter struct {
	AccountID string // empty means all accounts in the workspace
	Limit     int    // <=0 means DefaultTransactionWindow
}

// AccountBalance is the authoritative current balance of one account:
// opening balance plus the sum of every stored transaction.
type AccountBalance struct {
	AccountID   string
	AccountName string
	Currency    string
	Balance     core.Money
}

// ExportRow is a denormalized transaction used by the sheet export worker.
type ExportRow struct {
	TransactionID string
	WorkspaceID   string
	Date          core.Date
	Description   string
	Amount        core.Money
	AccountName   string
	Currency      string
	CategoryLabel string
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// ---- Workspaces ----

func (r *SQLiteRepository) CreateWorkspace(ctx context.Context, w core.Workspace) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO workspaces (id, name, created_at) VALUES (?, ?, ?)`,
		w.ID, w.Name, formatTime(w.CreatedAt))
	if err != nil {
		return fmt.Errorf("create workspace: %w", err)
	}
	slog.InfoContext(ctx, "Workspace created", "id", w.ID, "name", w.Name)
	return nil
}

func (r *SQLiteRepository) GetWorkspace(ctx context.Context, id string) (core.Workspace, error) {
	var w core.Workspace
	var created string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM workspaces WHERE id = ?`, id).
		Scan(&w.ID, &w.Name, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Workspace{}, ErrNotFound
	}
	if err != nil {
		return core.Workspace{}, fmt.Errorf("get workspace: %w", err)
	}
	w.CreatedAt = parseTime(created)
	return w, nil
}

func (r *SQLiteRepository) ListWorkspaces(ctx context.Context) ([]core.Workspace, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, created_at FROM workspaces ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}
	defer rows.Close()

	var out []core.Workspace
	for rows.Next() {
		var w core.Workspace
		var created string
		if err := rows.Scan(&w.ID, &w.Name, &created); err != nil {
			return nil, fmt.Errorf("scan workspace: %w", err)
		}
		w.CreatedAt = parseTime(created)
		out = append(out, w)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) RenameWorkspace(ctx context.Context, id, name string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE workspaces SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return fmt.Errorf("rename workspace: %w", err)
	}
	return requireRow(res, "rename workspace")
}

// ---- Accounts ----

func (r *SQLiteRepository) CreateAccount(ctx context.Context, a core.Account) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO accounts (id, workspace_id, name, kind, currency, opening_balance_cents, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.WorkspaceID, a.Name, string(a.Kind), a.Currency, a.OpeningBalance.Cents, formatTime(a.CreatedAt))
	if err != nil {
		return fmt.Errorf("create account: %w", err)
	}
	slog.InfoContext(ctx, "Account created",
		"id", a.ID,
		"workspace_id", a.WorkspaceID,
		"name", a.Name,
		"kind", a.Kind,
		"opening_balance_cents", a.OpeningBalance.Cents)
	return nil
}

func (r *SQLiteRepository) GetAccount(ctx context.Context, workspaceID, id string) (core.Account, error) {
	var a core.Account
	var kind, created string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, workspace_id, name, kind, currency, opening_balance_cents, created_at
		 FROM accounts WHERE workspace_id = ? AND id = ?`, workspaceID, id).
		Scan(&a.ID, &a.WorkspaceID, &a.Name, &kind, &a.Currency, &a.OpeningBalance.Cents, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Account{}, ErrNotFound
	}
	if err != nil {
		return core.Account{}, fmt.Errorf("get account: %w", err)
	}
	a.Kind = core.AccountKind(kind)
	a.CreatedAt = parseTime(created)
	return a, nil
}

func (r *SQLiteRepository) ListAccounts(ctx context.Context, workspaceID string) ([]core.Account, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, workspace_id, name, kind, currency, opening_balance_cents, created_at
		 FROM accounts WHERE workspace_id = ? ORDER BY name`, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var out []core.Account
	for rows.Next() {
		var a core.Account
		var kind, created string
		if err := rows.Scan(&a.ID, &a.WorkspaceID, &a.Name, &kind, &a.Currency, &a.OpeningBalance.Cents, &created); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		a.Kind = core.AccountKind(kind)
		a.CreatedAt = parseTime(created)
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) UpdateAccount(ctx context.Context, a core.Account) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE accounts SET name = ?, kind = ?, currency = ?, opening_balance_cents = ?
		 WHERE workspace_id = ? AND id = ?`,
		a.Name, string(a.Kind), a.Currency, a.OpeningBalance.Cents, a.WorkspaceID, a.ID)
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	return requireRow(res, "update account")
}

func (r *SQLiteRepository) DeleteAccount(ctx context.Context, workspaceID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM accounts WHERE workspace_id = ? AND id = ?`, workspaceID, id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return requireRow(res, "delete account")
}

// ---- Categories ----

func (r *SQLiteRepository) CreateCategory(ctx context.Context, c core.Category) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (id, workspace_id, name, kind, created_at) VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.WorkspaceID, c.Name, string(c.Kind), formatTime(c.CreatedAt))
	if err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	slog.InfoContext(ctx, "Category created",
		"id", c.ID, "workspace_id", c.WorkspaceID, "name", c.Name, "kind", c.Kind)
	return nil
}

func (r *SQLiteRepository) GetCategory(ctx context.Context, workspaceID, id string) (core.Category, error) {
	var c core.Category
	var kind, created string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, workspace_id, name, kind, created_at
		 FROM categories WHERE workspace_id = ? AND id = ?`, workspaceID, id).
		Scan(&c.ID, &c.WorkspaceID, &c.Name, &kind, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Category{}, ErrNotFound
	}
	if err != nil {
		return core.Category{}, fmt.Errorf("get category: %w", err)
	}
	c.Kind = core.CategoryKind(kind)
	c.CreatedAt = parseTime(created)
	return c, nil
}

func (r *SQLiteRepository) ListCategories(ctx context.Context, workspaceID string) ([]core.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, workspace_id, name, kind, created_at
		 FROM categories WHERE workspace_id = ? ORDER BY kind, name`, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []core.Category
	for rows.Next() {
		var c core.Category
		var kind, created string
		if err := rows.Scan(&c.ID, &c.WorkspaceID, &c.Name, &kind, &created); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		c.Kind = core.CategoryKind(kind)
		c.CreatedAt = parseTime(created)
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) UpdateCategory(ctx context.Context, c core.Category) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE categories SET name = ?, kind = ? WHERE workspace_id = ? AND id = ?`,
		c.Name, string(c.Kind), c.WorkspaceID, c.ID)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return requireRow(res, "update category")
}

func (r *SQLiteRepository) DeleteCategory(ctx context.Context, workspaceID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM categories WHERE workspace_id = ? AND id = ?`, workspaceID, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return requireRow(res, "delete category")
}

// ---- Transactions ----

func (r *SQLiteRepository) CreateTransaction(ctx context.Context, t core.Transaction) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (id, workspace_id, account_id, category_id, txn_date, description, amount_cents, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.WorkspaceID, t.AccountID, nullable(t.CategoryID), t.Date.ISO(), t.Description, t.Amount.Cents, formatTime(t.CreatedAt))
	if err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}
	slog.InfoContext(ctx, "Transaction created",
		"id", t.ID,
		"workspace_id", t.WorkspaceID,
		"account_id", t.AccountID,
		"txn_date", t.Date.ISO(),
		"amount_cents", t.Amount.Cents)
	return nil
}

func (r *SQLiteRepository) GetTransaction(ctx context.Context, workspaceID, id string) (core.Transaction, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, workspace_id, account_id, COALESCE(category_id, ''), txn_date, description, amount_cents, created_at
		 FROM transactions WHERE workspace_id = ? AND id = ?`, workspaceID, id)
	t, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Transaction{}, ErrNotFound
	}
	if err != nil {
		return core.Transaction{}, fmt.Errorf("get transaction: %w", err)
	}
	return t, nil
}

func (r *SQLiteRepository) ListTransactions(ctx context.Context, workspaceID string, f TransactionFilter) ([]core.Transaction, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultTransactionWindow
	}

	query := `SELECT id, workspace_id, account_id, COALESCE(category_id, ''), txn_date, description, amount_cents, created_at
		 FROM transactions WHERE workspace_id = ?`
	args := []any{workspaceID}
	if f.AccountID != "" {
		query += ` AND account_id = ?`
		args = append(args, f.AccountID)
	}
	query += ` ORDER BY txn_date DESC, created_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) UpdateTransaction(ctx context.Context, t core.Transaction) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE transactions
		 SET account_id = ?, category_id = ?, txn_date = ?, description = ?, amount_cents = ?, exported = 0
		 WHERE workspace_id = ? AND id = ?`,
		t.AccountID, nullable(t.CategoryID), t.Date.ISO(), t.Description, t.Amount.Cents, t.WorkspaceID, t.ID)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	return requireRow(res, "update transaction")
}

func (r *SQLiteRepository) DeleteTransaction(ctx context.Context, workspaceID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM transactions WHERE workspace_id = ? AND id = ?`, workspaceID, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return requireRow(res, "delete transaction")
}

// ---- Aggregates ----

// AccountBalances computes opening balance + full-history transaction sum per
// account. This is the authoritative figure for headline balances; bounded
// local windows only ever feed the per-row running column.
func (r *SQLiteRepository) AccountBalances(ctx context.Context, workspaceID string) ([]AccountBalance, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT a.id, a.name, a.currency, a.opening_balance_cents + COALESCE(SUM(t.amount_cents), 0)
		 FROM accounts a
		 LEFT JOIN transactions t ON t.account_id = a.id
		 WHERE a.workspace_id = ?
		 GROUP BY a.id, a.name, a.currency, a.opening_balance_cents
		 ORDER BY a.name`, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("account balances: %w", err)
	}
	defer rows.Close()

	var out []AccountBalance
	for rows.Next() {
		var b AccountBalance
		if err := rows.Scan(&b.AccountID, &b.AccountName, &b.Currency, &b.Balance.Cents); err != nil {
			return nil, fmt.Errorf("scan account balance: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// MonthlySummary returns per-month income/expense/net for months with
// activity, newest first, within the last `months` calendar months.
func (r *SQLiteRepository) MonthlySummary(ctx context.Context, workspaceID string, months int, now time.Time) ([]core.MonthSummary, error) {
	if months <= 0 {
		months = 12
	}
	since := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, -(months - 1), 0).Format("2006-01-02")

	rows, err := r.db.QueryContext(ctx,
		`SELECT substr(txn_date, 1, 7) AS month,
		        COALESCE(SUM(CASE WHEN amount_cents > 0 THEN amount_cents ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN amount_cents < 0 THEN amount_cents ELSE 0 END), 0),
		        COALESCE(SUM(amount_cents), 0)
		 FROM transactions
		 WHERE workspace_id = ? AND txn_date >= ?
		 GROUP BY month
		 ORDER BY month DESC`, workspaceID, since)
	if err != nil {
		return nil, fmt.Errorf("monthly summary: %w", err)
	}
	defer rows.Close()

	var out []core.MonthSummary
	for rows.Next() {
		var s core.MonthSummary
		if err := rows.Scan(&s.Month, &s.Income.Cents, &s.Expense.Cents, &s.Net.Cents); err != nil {
			return nil, fmt.Errorf("scan month summary: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// TopCategoriesForMonth ranks expense spend per category label for one month.
func (r *SQLiteRepository) TopCategoriesForMonth(ctx context.Context, workspaceID, monthKey string, limit int) ([]core.CategoryTotal, error) {
	if limit <= 0 {
		limit = 8
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT COALESCE(c.kind || ': ' || c.name, ?) AS label, SUM(-t.amount_cents) AS total
		 FROM transactions t
		 LEFT JOIN categories c ON c.id = t.category_id
		 WHERE t.workspace_id = ? AND substr(t.txn_date, 1, 7) = ? AND t.amount_cents < 0
		 GROUP BY label
		 ORDER BY total DESC
		 LIMIT ?`, core.UncategorizedLabel, workspaceID, monthKey, limit)
	if err != nil {
		return nil, fmt.Errorf("top categories: %w", err)
	}
	defer rows.Close()

	var out []core.CategoryTotal
	for rows.Next() {
		var t core.CategoryTotal
		if err := rows.Scan(&t.Label, &t.Total.Cents); err != nil {
			return nil, fmt.Errorf("scan category total: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// ---- Budgets ----

// UpsertBudgetRows replaces the planned amounts for one workspace+month in a
// single transaction.
func (r *SQLiteRepository) UpsertBudgetRows(ctx context.Context, workspaceID, month string, budgetRows []core.BudgetRow) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin budget upsert: %w", err)
	}
	defer tx.Rollback()

	for _, row := range budgetRows {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO budgets (workspace_id, month, category_id, planned_cents)
			 VALUES (?, ?, ?, ?)
			 ON CONFLICT (workspace_id, month, category_id)
			 DO UPDATE SET planned_cents = excluded.planned_cents`,
			workspaceID, month, row.CategoryID, row.Planned.Cents)
		if err != nil {
			return fmt.Errorf("upsert budget row (category=%s): %w", row.CategoryID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit budget upsert: %w", err)
	}
	slog.InfoContext(ctx, "Budget rows upserted",
		"workspace_id", workspaceID, "month", month, "rows", len(budgetRows))
	return nil
}

func (r *SQLiteRepository) ListBudgetRows(ctx context.Context, workspaceID, month string) ([]core.BudgetRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT workspace_id, month, category_id, planned_cents
		 FROM budgets WHERE workspace_id = ? AND month = ?`, workspaceID, month)
	if err != nil {
		return nil, fmt.Errorf("list budget rows: %w", err)
	}
	defer rows.Close()

	var out []core.BudgetRow
	for rows.Next() {
		var b core.BudgetRow
		if err := rows.Scan(&b.WorkspaceID, &b.Month, &b.CategoryID, &b.Planned.Cents); err != nil {
			return nil, fmt.Errorf("scan budget row: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// ---- Export tracking ----

// ListUnexported returns export rows for transactions not yet pushed to the
// sheet, oldest first.
func (r *SQLiteRepository) ListUnexported(ctx context.Context, limit int) ([]ExportRow, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT t.id, t.workspace_id, t.txn_date, t.description, t.amount_cents,
		        a.name, a.currency,
		        COALESCE(c.kind || ': ' || c.name, ?)
		 FROM transactions t
		 JOIN accounts a ON a.id = t.account_id
		 LEFT JOIN categories c ON c.id = t.category_id
		 WHERE t.exported = 0
		 ORDER BY t.created_at
		 LIMIT ?`, core.UncategorizedLabel, limit)
	if err != nil {
		return nil, fmt.Errorf("list unexported: %w", err)
	}
	defer rows.Close()

	var out []ExportRow
	for rows.Next() {
		row, err := scanExportRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan export row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// GetExportRow loads one transaction in export shape.
func (r *SQLiteRepository) GetExportRow(ctx context.Context, workspaceID, txnID string) (ExportRow, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT t.id, t.workspace_id, t.txn_date, t.description, t.amount_cents,
		        a.name, a.currency,
		        COALESCE(c.kind || ': ' || c.name, ?)
		 FROM transactions t
		 JOIN accounts a ON a.id = t.account_id
		 LEFT JOIN categories c ON c.id = t.category_id
		 WHERE t.workspace_id = ? AND t.id = ?`, core.UncategorizedLabel, workspaceID, txnID)
	out, err := scanExportRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return ExportRow{}, ErrNotFound
	}
	if err != nil {
		return ExportRow{}, fmt.Errorf("get export row: %w", err)
	}
	return out, nil
}

// MarkExported records that a transaction reached the export sheet.
func (r *SQLiteRepository) MarkExported(ctx context.Context, txnID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE transactions SET exported = 1 WHERE id = ?`, txnID)
	if err != nil {
		return fmt.Errorf("mark exported: %w", err)
	}
	slog.InfoContext(ctx, "Transaction marked exported", "id", txnID)
	return nil
}

// ---- helpers ----

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (core.Transaction, error) {
	var t core.Transaction
	var date, created string
	err := row.Scan(&t.ID, &t.WorkspaceID, &t.AccountID, &t.CategoryID, &date, &t.Description, &t.Amount.Cents, &created)
	if err != nil {
		return core.Transaction{}, err
	}
	d, err := core.ParseDate(date)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("parse txn_date %q: %w", date, err)
	}
	t.Date = d
	t.CreatedAt = parseTime(created)
	return t, nil
}

func scanExportRow(row rowScanner) (ExportRow, error) {
	var e ExportRow
	var date string
	err := row.Scan(&e.TransactionID, &e.WorkspaceID, &date, &e.Description, &e.Amount.Cents,
		&e.AccountName, &e.Currency, &e.CategoryLabel)
	if err != nil {
		return ExportRow{}, err
	}
	d, err := core.ParseDate(date)
	if err != nil {
		return ExportRow{}, fmt.Errorf("parse txn_date %q: %w", date, err)
	}
	e.Date = d
	return e, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func requireRow(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", op, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
