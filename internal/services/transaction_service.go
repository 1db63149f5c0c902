package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"finbook/internal/core"
	"finbook/internal/storage"
)

// TransactionService orchestrates transaction writes: sign normalization
// against the category kind, persistence, and the non-blocking export
// notification.
type TransactionService struct {
	repo      Repository
	publisher ExportPublisher
}

func NewTransactionService(repo Repository, publisher ExportPublisher) *TransactionService {
	return &TransactionService{repo: repo, publisher: publisher}
}

// TransactionInput carries user-supplied transaction fields. Amount is free
// text; the stored sign always follows the category kind when one is set.
type TransactionInput struct {
	AccountID   string
	CategoryID  string // empty for uncategorized
	Date        string // YYYY-MM-DD
	Description string
	Amount      string
}

func (s *TransactionService) Create(ctx context.Context, workspaceID string, in TransactionInput) (core.Transaction, error) {
	t, err := s.build(ctx, workspaceID, in)
	if err != nil {
		return core.Transaction{}, err
	}
	t.ID = uuid.NewString()
	t.CreatedAt = time.Now().UTC()

	if err := s.repo.CreateTransaction(ctx, t); err != nil {
		return core.Transaction{}, fmt.Errorf("save transaction: %w", err)
	}

	// Export is best-effort; a broker outage never fails the write.
	s.publishExport(ctx, t.WorkspaceID, t.ID, 1)
	return t, nil
}

// Update replaces a transaction's editable fields. The amount is re-normalized
// against the new category's kind, so moving a row from an income to an
// expense category flips its stored sign.
func (s *TransactionService) Update(ctx context.Context, workspaceID, id string, in TransactionInput) (core.Transaction, error) {
	existing, err := s.repo.GetTransaction(ctx, workspaceID, id)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("lookup transaction: %w", err)
	}

	t, err := s.build(ctx, workspaceID, in)
	if err != nil {
		return core.Transaction{}, err
	}
	t.ID = existing.ID
	t.CreatedAt = existing.CreatedAt

	// Blank amount text keeps the stored magnitude; only the sign is
	// re-derived from the target category.
	if strings.TrimSpace(in.Amount) == "" {
		kind := core.KindNone
		if t.CategoryID != "" {
			if category, err := s.repo.GetCategory(ctx, workspaceID, t.CategoryID); err == nil {
				kind = category.Kind
			}
		}
		t.Amount = core.ApplySign(existing.Amount, kind)
	}

	if err := s.repo.UpdateTransaction(ctx, t); err != nil {
		return core.Transaction{}, fmt.Errorf("update transaction: %w", err)
	}

	s.publishExport(ctx, t.WorkspaceID, t.ID, 2)
	return t, nil
}

func (s *TransactionService) Get(ctx context.Context, workspaceID, id string) (core.Transaction, error) {
	return s.repo.GetTransaction(ctx, workspaceID, id)
}

func (s *TransactionService) List(ctx context.Context, workspaceID string, f storage.TransactionFilter) ([]core.Transaction, error) {
	return s.repo.ListTransactions(ctx, workspaceID, f)
}

func (s *TransactionService) Delete(ctx context.Context, workspaceID, id string) error {
	return s.repo.DeleteTransaction(ctx, workspaceID, id)
}

// build validates references and produces the normalized transaction, without
// identity fields.
func (s *TransactionService) build(ctx context.Context, workspaceID string, in TransactionInput) (core.Transaction, error) {
	account, err := s.repo.GetAccount(ctx, workspaceID, in.AccountID)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("lookup account: %w", err)
	}

	kind := core.KindNone
	if in.CategoryID != "" {
		category, err := s.repo.GetCategory(ctx, workspaceID, in.CategoryID)
		if err != nil {
			return core.Transaction{}, fmt.Errorf("lookup category: %w", err)
		}
		kind = category.Kind
	}

	date, err := core.ParseDate(in.Date)
	if err != nil {
		return core.Transaction{}, err
	}

	t := core.Transaction{
		WorkspaceID: workspaceID,
		AccountID:   account.ID,
		CategoryID:  in.CategoryID,
		Date:        date,
		Description: strings.TrimSpace(in.Description),
		Amount:      core.NormalizeAmount(in.Amount, kind),
	}
	if err := t.Validate(); err != nil {
		return core.Transaction{}, err
	}
	return t, nil
}

func (s *TransactionService) publishExport(ctx context.Context, workspaceID, id string, version int64) {
	if s.publisher == nil {
		slog.WarnContext(ctx, "Export publisher not available, skipping export message")
		return
	}
	if err := s.publisher.PublishTransactionExport(ctx, workspaceID, id, version); err != nil {
		slog.ErrorContext(ctx, "Failed to publish export message",
			"workspace_id", workspaceID,
			"transaction_id", id,
			"error", err)
	}
}
