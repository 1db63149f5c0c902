package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"finbook/internal/core"
	"finbook/internal/storage"
)

// StatementService builds running-balance statements. The per-row running
// column comes from the bounded local window; the headline balance comes from
// the storage layer's full-history aggregate whenever it is available.
type StatementService struct {
	repo Repository
}

func NewStatementService(repo Repository) *StatementService {
	return &StatementService{repo: repo}
}

// NetWorth is the sum of all account balances in a workspace.
type NetWorth struct {
	Total    core.Money
	Accounts []storage.AccountBalance
}

// AccountStatement builds the drill-down statement for one account. The
// transaction window and the authoritative balance load concurrently.
func (s *StatementService) AccountStatement(ctx context.Context, workspaceID, accountID string, maxRows int) (core.Statement, error) {
	account, err := s.repo.GetAccount(ctx, workspaceID, accountID)
	if err != nil {
		return core.Statement{}, fmt.Errorf("lookup account: %w", err)
	}

	var (
		txns     []core.Transaction
		balances []storage.AccountBalance
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		txns, err = s.repo.ListTransactions(gctx, workspaceID, storage.TransactionFilter{AccountID: accountID})
		if err != nil {
			return fmt.Errorf("list transactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		balances, err = s.repo.AccountBalances(gctx, workspaceID)
		if err != nil {
			return fmt.Errorf("account balances: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return core.Statement{}, err
	}

	return core.BuildStatement(account, txns, core.StatementOptions{
		MaxRows:         maxRows,
		ReportedBalance: reportedBalance(balances, accountID),
	}), nil
}

// WorkspaceStatements builds the summary statement for every account in the
// workspace from one bounded transaction window. Statements come back in
// account list order (alphabetical by name).
func (s *StatementService) WorkspaceStatements(ctx context.Context, workspaceID string) ([]core.Statement, error) {
	var (
		accounts []core.Account
		txns     []core.Transaction
		balances []storage.AccountBalance
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		accounts, err = s.repo.ListAccounts(gctx, workspaceID)
		if err != nil {
			return fmt.Errorf("list accounts: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		txns, err = s.repo.ListTransactions(gctx, workspaceID, storage.TransactionFilter{})
		if err != nil {
			return fmt.Errorf("list transactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		balances, err = s.repo.AccountBalances(gctx, workspaceID)
		if err != nil {
			return fmt.Errorf("account balances: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byAccount := core.GroupByAccount(txns)
	statements := make([]core.Statement, 0, len(accounts))
	for _, account := range accounts {
		statements = append(statements, core.BuildStatement(account, byAccount[account.ID], core.StatementOptions{
			MaxRows:         core.SummaryStatementRows,
			ReportedBalance: reportedBalance(balances, account.ID),
		}))
	}
	return statements, nil
}

// NetWorth sums the authoritative balances of every account.
func (s *StatementService) NetWorth(ctx context.Context, workspaceID string) (NetWorth, error) {
	balances, err := s.repo.AccountBalances(ctx, workspaceID)
	if err != nil {
		return NetWorth{}, fmt.Errorf("account balances: %w", err)
	}
	var total core.Money
	for _, b := range balances {
		total = total.Add(b.Balance)
	}
	return NetWorth{Total: total, Accounts: balances}, nil
}

func reportedBalance(balances []storage.AccountBalance, accountID string) *core.Money {
	for _, b := range balances {
		if b.AccountID == accountID {
			m := b.Balance
			return &m
		}
	}
	return nil
}
