package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"finbook/internal/core"
)

// LedgerService manages the bookkeeping structure of a workspace: the
// workspace itself, its accounts, and its categories.
type LedgerService struct {
	repo Repository
}

func NewLedgerService(repo Repository) *LedgerService {
	return &LedgerService{repo: repo}
}

func (s *LedgerService) CreateWorkspace(ctx context.Context, name string) (core.Workspace, error) {
	w := core.Workspace{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(name),
		CreatedAt: time.Now().UTC(),
	}
	if err := w.Validate(); err != nil {
		return core.Workspace{}, err
	}
	if err := s.repo.CreateWorkspace(ctx, w); err != nil {
		return core.Workspace{}, fmt.Errorf("create workspace: %w", err)
	}
	return w, nil
}

func (s *LedgerService) GetWorkspace(ctx context.Context, id string) (core.Workspace, error) {
	return s.repo.GetWorkspace(ctx, id)
}

func (s *LedgerService) ListWorkspaces(ctx context.Context) ([]core.Workspace, error) {
	return s.repo.ListWorkspaces(ctx)
}

func (s *LedgerService) RenameWorkspace(ctx context.Context, id, name string) error {
	w := core.Workspace{ID: id, Name: strings.TrimSpace(name)}
	if err := w.Validate(); err != nil {
		return err
	}
	return s.repo.RenameWorkspace(ctx, id, w.Name)
}

// AccountInput carries user-supplied account fields. OpeningBalance is free
// text and goes through the lenient amount parser.
type AccountInput struct {
	Name           string
	Kind           core.AccountKind
	Currency       string
	OpeningBalance string
}

func (s *LedgerService) CreateAccount(ctx context.Context, workspaceID string, in AccountInput) (core.Account, error) {
	if _, err := s.repo.GetWorkspace(ctx, workspaceID); err != nil {
		return core.Account{}, fmt.Errorf("lookup workspace: %w", err)
	}

	a := core.Account{
		ID:             uuid.NewString(),
		WorkspaceID:    workspaceID,
		Name:           strings.TrimSpace(in.Name),
		Kind:           in.Kind,
		Currency:       strings.ToUpper(strings.TrimSpace(in.Currency)),
		OpeningBalance: core.Money{Cents: core.ParseAmountToCents(in.OpeningBalance)},
		CreatedAt:      time.Now().UTC(),
	}
	if err := a.Validate(); err != nil {
		return core.Account{}, err
	}
	if err := s.repo.CreateAccount(ctx, a); err != nil {
		return core.Account{}, fmt.Errorf("create account: %w", err)
	}
	return a, nil
}

func (s *LedgerService) GetAccount(ctx context.Context, workspaceID, id string) (core.Account, error) {
	return s.repo.GetAccount(ctx, workspaceID, id)
}

func (s *LedgerService) ListAccounts(ctx context.Context, workspaceID string) ([]core.Account, error) {
	return s.repo.ListAccounts(ctx, workspaceID)
}

func (s *LedgerService) UpdateAccount(ctx context.Context, workspaceID, id string, in AccountInput) (core.Account, error) {
	existing, err := s.repo.GetAccount(ctx, workspaceID, id)
	if err != nil {
		return core.Account{}, fmt.Errorf("lookup account: %w", err)
	}

	existing.Name = strings.TrimSpace(in.Name)
	existing.Kind = in.Kind
	existing.Currency = strings.ToUpper(strings.TrimSpace(in.Currency))
	existing.OpeningBalance = core.Money{Cents: core.ParseAmountToCents(in.OpeningBalance)}
	if err := existing.Validate(); err != nil {
		return core.Account{}, err
	}
	if err := s.repo.UpdateAccount(ctx, existing); err != nil {
		return core.Account{}, fmt.Errorf("update account: %w", err)
	}
	return existing, nil
}

// DeleteAccount removes an account and, through the schema's cascade, all its
// transactions.
func (s *LedgerService) DeleteAccount(ctx context.Context, workspaceID, id string) error {
	return s.repo.DeleteAccount(ctx, workspaceID, id)
}

type CategoryInput struct {
	Name string
	Kind core.CategoryKind
}

func (s *LedgerService) CreateCategory(ctx context.Context, workspaceID string, in CategoryInput) (core.Category, error) {
	if _, err := s.repo.GetWorkspace(ctx, workspaceID); err != nil {
		return core.Category{}, fmt.Errorf("lookup workspace: %w", err)
	}

	c := core.Category{
		ID:          uuid.NewString(),
		WorkspaceID: workspaceID,
		Name:        strings.TrimSpace(in.Name),
		Kind:        in.Kind,
		CreatedAt:   time.Now().UTC(),
	}
	if err := c.Validate(); err != nil {
		return core.Category{}, err
	}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return core.Category{}, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

func (s *LedgerService) ListCategories(ctx context.Context, workspaceID string) ([]core.Category, error) {
	return s.repo.ListCategories(ctx, workspaceID)
}

// UpdateCategory changes name and kind. Existing transaction amounts are left
// untouched; the kind only forces signs at transaction write time.
func (s *LedgerService) UpdateCategory(ctx context.Context, workspaceID, id string, in CategoryInput) (core.Category, error) {
	existing, err := s.repo.GetCategory(ctx, workspaceID, id)
	if err != nil {
		return core.Category{}, fmt.Errorf("lookup category: %w", err)
	}

	existing.Name = strings.TrimSpace(in.Name)
	existing.Kind = in.Kind
	if err := existing.Validate(); err != nil {
		return core.Category{}, err
	}
	if err := s.repo.UpdateCategory(ctx, existing); err != nil {
		return core.Category{}, fmt.Errorf("update category: %w", err)
	}
	return existing, nil
}

// DeleteCategory removes a category; referencing transactions become
// uncategorized through the schema's SET NULL.
func (s *LedgerService) DeleteCategory(ctx context.Context, workspaceID, id string) error {
	return s.repo.DeleteCategory(ctx, workspaceID, id)
}
