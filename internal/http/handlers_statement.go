package http

import (
	"fmt"
	"net/http"

	"finbook/internal/core"
)

func (s *Server) handleWorkspaceStatements(w http.ResponseWriter, r *http.Request) {
	workspaceID := r.PathValue("workspaceID")
	cacheKey := workspaceID + "|statements"

	if cached, ok := s.summaryCache.Get(cacheKey); ok {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	statements, err := s.statements.WorkspaceStatements(r.Context(), workspaceID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	out := make([]statementPayload, 0, len(statements))
	for _, st := range statements {
		out = append(out, toStatementPayload(st))
	}
	s.summaryCache.Set(cacheKey, out)
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleAccountStatement(w http.ResponseWriter, r *http.Request) {
	workspaceID := r.PathValue("workspaceID")
	accountID := r.PathValue("accountID")
	maxRows := queryInt(r, "rows", core.DefaultStatementRows)
	cacheKey := fmt.Sprintf("%s|statement|%s|%d", workspaceID, accountID, maxRows)

	if cached, ok := s.statementCache.Get(cacheKey); ok {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	statement, err := s.statements.AccountStatement(r.Context(), workspaceID, accountID, maxRows)
	if err != nil {
		writeError(w, r, err)
		return
	}
	payload := toStatementPayload(statement)
	s.statementCache.Set(cacheKey, payload)
	writeJSON(w, http.StatusOK, payload)
}

func (s *Server) handleNetWorth(w http.ResponseWriter, r *http.Request) {
	netWorth, err := s.statements.NetWorth(r.Context(), r.PathValue("workspaceID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toNetWorthPayload(netWorth))
}
