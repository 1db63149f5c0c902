package services

import (
	"context"
	"time"

	"finbook/internal/core"
	"finbook/internal/storage"
)

// Repository is the persistence surface the services depend on. The SQLite
// repository is the production implementation; the memory store backs tests.
type Repository interface {
	CreateWorkspace(ctx context.Context, w core.Workspace) error
	GetWorkspace(ctx context.Context, id string) (core.Workspace, error)
	ListWorkspaces(ctx context.Context) ([]core.Workspace, error)
	RenameWorkspace(ctx context.Context, id, name string) error

	CreateAccount(ctx context.Context, a core.Account) error
	GetAccount(ctx context.Context, workspaceID, id string) (core.Account, error)
	ListAccounts(ctx context.Context, workspaceID string) ([]core.Account, error)
	UpdateAccount(ctx context.Context, a core.Account) error
	DeleteAccount(ctx context.Context, workspaceID, id string) error

	CreateCategory(ctx context.Context, c core.Category) error
	GetCategory(ctx context.Context, workspaceID, id string) (core.Category, error)
	ListCategories(ctx context.Context, workspaceID string) ([]core.Category, error)
	UpdateCategory(ctx context.Context, c core.Category) error
	DeleteCategory(ctx context.Context, workspaceID, id string) error

	CreateTransaction(ctx context.Context, t core.Transaction) error
	GetTransaction(ctx context.Context, workspaceID, id string) (core.Transaction, error)
	ListTransactions(ctx context.Context, workspaceID string, f storage.TransactionFilter) ([]core.Transaction, error)
	UpdateTransaction(ctx context.Context, t core.Transaction) error
	DeleteTransaction(ctx context.Context, workspaceID, id string) error

	AccountBalances(ctx context.Context, workspaceID string) ([]storage.AccountBalance, error)
	MonthlySummary(ctx context.Context, workspaceID string, months int, now time.Time) ([]core.MonthSummary, error)
	TopCategoriesForMonth(ctx context.Context, workspaceID, monthKey string, limit int) ([]core.CategoryTotal, error)

	UpsertBudgetRows(ctx context.Context, workspaceID, month string, rows []core.BudgetRow) error
	ListBudgetRows(ctx context.Context, workspaceID, month string) ([]core.BudgetRow, error)
}

// ExportPublisher notifies the export worker that a transaction changed.
type ExportPublisher interface {
	PublishTransactionExport(ctx context.Context, workspaceID, transactionID string, version int64) error
}
