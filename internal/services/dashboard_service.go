package services

import (
	"context"
	"fmt"
	"time"

	"finbook/internal/core"
	"finbook/internal/storage"
)

// DashboardService serves the aggregated views: monthly income/expense
// summaries, top spending categories, and budget tracking.
type DashboardService struct {
	repo Repository
	now  func() time.Time
}

func NewDashboardService(repo Repository) *DashboardService {
	return &DashboardService{repo: repo, now: time.Now}
}

// MonthlySummary returns one entry per calendar month, newest first, covering
// the last `months` months. Months without activity appear with zero totals.
func (s *DashboardService) MonthlySummary(ctx context.Context, workspaceID string, months int) ([]core.MonthSummary, error) {
	if months <= 0 {
		months = 12
	}
	now := s.now().UTC()

	stored, err := s.repo.MonthlySummary(ctx, workspaceID, months, now)
	if err != nil {
		return nil, fmt.Errorf("monthly summary: %w", err)
	}
	byMonth := make(map[string]core.MonthSummary, len(stored))
	for _, m := range stored {
		byMonth[m.Month] = m
	}

	out := make([]core.MonthSummary, 0, months)
	cursor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < months; i++ {
		key := cursor.Format("2006-01")
		if m, ok := byMonth[key]; ok {
			out = append(out, m)
		} else {
			out = append(out, core.MonthSummary{Month: key})
		}
		cursor = cursor.AddDate(0, -1, 0)
	}
	return out, nil
}

// TopCategories ranks expense categories by spend magnitude for one month.
func (s *DashboardService) TopCategories(ctx context.Context, workspaceID, monthKey string, limit int) ([]core.CategoryTotal, error) {
	if !core.ValidMonthKey(monthKey) {
		return nil, core.ErrInvalidMonthKey
	}
	totals, err := s.repo.TopCategoriesForMonth(ctx, workspaceID, monthKey, limit)
	if err != nil {
		return nil, fmt.Errorf("top categories: %w", err)
	}
	return totals, nil
}

// BudgetInput is one planned amount in user text form. Planned amounts are
// magnitudes; signs are stripped.
type BudgetInput struct {
	CategoryID string
	Planned    string
}

// UpsertBudget replaces the planned rows for a month. Every referenced
// category must exist in the workspace.
func (s *DashboardService) UpsertBudget(ctx context.Context, workspaceID, monthKey string, inputs []BudgetInput) error {
	if !core.ValidMonthKey(monthKey) {
		return core.ErrInvalidMonthKey
	}

	rows := make([]core.BudgetRow, 0, len(inputs))
	for _, in := range inputs {
		if _, err := s.repo.GetCategory(ctx, workspaceID, in.CategoryID); err != nil {
			return fmt.Errorf("lookup category %s: %w", in.CategoryID, err)
		}
		rows = append(rows, core.BudgetRow{
			WorkspaceID: workspaceID,
			Month:       monthKey,
			CategoryID:  in.CategoryID,
			Planned:     core.Money{Cents: core.ParseAmountToCents(in.Planned)}.Abs(),
		})
	}

	if err := s.repo.UpsertBudgetRows(ctx, workspaceID, monthKey, rows); err != nil {
		return fmt.Errorf("upsert budget: %w", err)
	}
	return nil
}

// BudgetLine compares one category's planned amount against actual spend.
type BudgetLine struct {
	Category  core.Category
	Planned   core.Money
	Actual    core.Money // spend magnitude, >= 0
	Remaining core.Money // planned minus actual, negative when over budget
}

// BudgetReport returns the month's budget lines with actual expense totals.
// Categories with a budget but no spend show a zero actual.
func (s *DashboardService) BudgetReport(ctx context.Context, workspaceID, monthKey string) ([]BudgetLine, error) {
	if !core.ValidMonthKey(monthKey) {
		return nil, core.ErrInvalidMonthKey
	}

	rows, err := s.repo.ListBudgetRows(ctx, workspaceID, monthKey)
	if err != nil {
		return nil, fmt.Errorf("list budget rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	txns, err := s.repo.ListTransactions(ctx, workspaceID, storage.TransactionFilter{})
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	actuals := map[string]int64{}
	for _, t := range txns {
		if t.Date.MonthKey() != monthKey || t.Amount.Cents >= 0 {
			continue
		}
		actuals[t.CategoryID] += -t.Amount.Cents
	}

	lines := make([]BudgetLine, 0, len(rows))
	for _, row := range rows {
		category, err := s.repo.GetCategory(ctx, workspaceID, row.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("lookup category %s: %w", row.CategoryID, err)
		}
		actual := core.Money{Cents: actuals[row.CategoryID]}
		lines = append(lines, BudgetLine{
			Category:  category,
			Planned:   row.Planned,
			Actual:    actual,
			Remaining: row.Planned.Add(actual.Neg()),
		})
	}
	return lines, nil
}
