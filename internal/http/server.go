// Package http exposes the JSON API: workspace administration, transaction
// capture, statements with running balances, and the dashboard aggregates.
package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"finbook/internal/cache"
	"finbook/internal/core"
	"finbook/internal/log"
	"finbook/internal/middleware/ratelimit"
	"finbook/internal/middleware/security"
	"finbook/internal/middleware/trace"
	"finbook/internal/services"
)

// Deps carries the service layer the server fronts.
type Deps struct {
	Ledger       *services.LedgerService
	Transactions *services.TransactionService
	Statements   *services.StatementService
	Dashboard    *services.DashboardService
	Logger       *log.Logger
}

type Server struct {
	http.Server

	ledger       *services.LedgerService
	transactions *services.TransactionService
	statements   *services.StatementService
	dashboard    *services.DashboardService

	detector    *security.Detector
	rateLimiter *ratelimit.Limiter
	traceMW     *trace.Middleware

	// Derived read views, keyed "<workspace>|...". Writes purge a workspace's
	// prefix; the TTL bounds staleness across processes.
	statementCache *cache.LRUCache[statementPayload]
	summaryCache   *cache.LRUCache[[]statementPayload]
	dashboardCache *cache.LRUCache[[]core.MonthSummary]
	cacheManager   *cache.Manager

	started      time.Time
	shutdownOnce sync.Once
}

func NewServer(addr string, deps Deps) *Server {
	mux := http.NewServeMux()

	detector := security.NewDetector()
	limiter := ratelimit.NewLimiter(ratelimit.DefaultConfig())
	traceMW := trace.NewMiddleware(detector.ExtractClientIP)

	s := &Server{
		ledger:       deps.Ledger,
		transactions: deps.Transactions,
		statements:   deps.Statements,
		dashboard:    deps.Dashboard,

		detector:    detector,
		rateLimiter: limiter,
		traceMW:     traceMW,

		statementCache: cache.NewLRUCache[statementPayload](200, 5*time.Minute),
		summaryCache:   cache.NewLRUCache[[]statementPayload](100, 5*time.Minute),
		dashboardCache: cache.NewLRUCache[[]core.MonthSummary](100, 5*time.Minute),
		cacheManager:   cache.NewManager(),

		started: time.Now(),
	}

	s.cacheManager.Register(s.statementCache)
	s.cacheManager.Register(s.summaryCache)
	s.cacheManager.Register(s.dashboardCache)
	s.cacheManager.StartCleanup(10 * time.Minute)

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.HandleFunc("GET /metrics", s.handleMetrics)

	mux.HandleFunc("POST /api/workspaces", s.handleCreateWorkspace)
	mux.HandleFunc("GET /api/workspaces", s.handleListWorkspaces)
	mux.HandleFunc("GET /api/workspaces/{workspaceID}", s.handleGetWorkspace)
	mux.HandleFunc("PATCH /api/workspaces/{workspaceID}", s.handleRenameWorkspace)

	mux.HandleFunc("POST /api/workspaces/{workspaceID}/accounts", s.handleCreateAccount)
	mux.HandleFunc("GET /api/workspaces/{workspaceID}/accounts", s.handleListAccounts)
	mux.HandleFunc("GET /api/workspaces/{workspaceID}/accounts/{accountID}", s.handleGetAccount)
	mux.HandleFunc("PUT /api/workspaces/{workspaceID}/accounts/{accountID}", s.handleUpdateAccount)
	mux.HandleFunc("DELETE /api/workspaces/{workspaceID}/accounts/{accountID}", s.handleDeleteAccount)

	mux.HandleFunc("POST /api/workspaces/{workspaceID}/categories", s.handleCreateCategory)
	mux.HandleFunc("GET /api/workspaces/{workspaceID}/categories", s.handleListCategories)
	mux.HandleFunc("PUT /api/workspaces/{workspaceID}/categories/{categoryID}", s.handleUpdateCategory)
	mux.HandleFunc("DELETE /api/workspaces/{workspaceID}/categories/{categoryID}", s.handleDeleteCategory)

	mux.HandleFunc("POST /api/workspaces/{workspaceID}/transactions", s.handleCreateTransaction)
	mux.HandleFunc("GET /api/workspaces/{workspaceID}/transactions", s.handleListTransactions)
	mux.HandleFunc("GET /api/workspaces/{workspaceID}/transactions/{transactionID}", s.handleGetTransaction)
	mux.HandleFunc("PUT /api/workspaces/{workspaceID}/transactions/{transactionID}", s.handleUpdateTransaction)
	mux.HandleFunc("DELETE /api/workspaces/{workspaceID}/transactions/{transactionID}", s.handleDeleteTransaction)

	mux.HandleFunc("GET /api/workspaces/{workspaceID}/statements", s.handleWorkspaceStatements)
	mux.HandleFunc("GET /api/workspaces/{workspaceID}/accounts/{accountID}/statement", s.handleAccountStatement)
	mux.HandleFunc("GET /api/workspaces/{workspaceID}/networth", s.handleNetWorth)

	mux.HandleFunc("GET /api/workspaces/{workspaceID}/dashboard/summary", s.handleMonthlySummary)
	mux.HandleFunc("GET /api/workspaces/{workspaceID}/dashboard/top-categories", s.handleTopCategories)
	mux.HandleFunc("PUT /api/workspaces/{workspaceID}/budgets/{month}", s.handleUpsertBudget)
	mux.HandleFunc("GET /api/workspaces/{workspaceID}/budgets/{month}", s.handleBudgetReport)

	logger := deps.Logger
	if logger == nil {
		logger = log.New(log.DefaultConfig()).WithComponent(log.ComponentHTTP)
	}

	// The trace middleware must run before the request-ID logger attachment:
	// it generates the ID the context logger picks up.
	headers := security.NewHeadersMiddleware(security.DefaultHeadersConfig())
	handler := s.screen(mux)
	handler = limiter.Middleware(detector.ExtractClientIP, nil)(handler)
	handler = headers.Middleware(handler)
	handler = log.RequestIDMiddleware(func(r *http.Request) string {
		return trace.GetRequestID(r.Context())
	})(handler)
	handler = traceMW.Middleware(handler)
	handler = log.Middleware(logger)(handler)

	s.Server = http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// screen rejects requests matching known probe patterns before they reach the
// API handlers.
func (s *Server) screen(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.detector.DetectSuspiciousRequest(r) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// purgeWorkspace drops the cached read views of one workspace after a write.
func (s *Server) purgeWorkspace(workspaceID string) {
	prefix := workspaceID + "|"
	s.statementCache.DeletePrefix(prefix)
	s.summaryCache.DeletePrefix(prefix)
	s.dashboardCache.DeletePrefix(prefix)
}

// Shutdown stops background cleanup, then drains the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		s.cacheManager.Stop()
		s.rateLimiter.Stop()
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}
