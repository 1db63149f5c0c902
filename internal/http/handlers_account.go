package http

import (
	"net/http"

	"finbook/internal/core"
	"finbook/internal/services"
)

type accountRequest struct {
	Name           string `json:"name"`
	Kind           string `json:"kind"`
	Currency       string `json:"currency"`
	OpeningBalance string `json:"opening_balance"`
}

func (r accountRequest) toInput() services.AccountInput {
	return services.AccountInput{
		Name:           r.Name,
		Kind:           core.AccountKind(r.Kind),
		Currency:       r.Currency,
		OpeningBalance: r.OpeningBalance,
	}
}

func (s *Server) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	workspaceID := r.PathValue("workspaceID")
	var req accountRequest
	if !decodeBody(w, r, &req) {
		return
	}
	account, err := s.ledger.CreateAccount(r.Context(), workspaceID, req.toInput())
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.purgeWorkspace(workspaceID)
	writeJSON(w, http.StatusCreated, toAccountPayload(account))
}

func (s *Server) handleListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := s.ledger.ListAccounts(r.Context(), r.PathValue("workspaceID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	out := make([]accountPayload, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toAccountPayload(a))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetAccount(w http.ResponseWriter, r *http.Request) {
	account, err := s.ledger.GetAccount(r.Context(), r.PathValue("workspaceID"), r.PathValue("accountID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountPayload(account))
}

func (s *Server) handleUpdateAccount(w http.ResponseWriter, r *http.Request) {
	workspaceID := r.PathValue("workspaceID")
	var req accountRequest
	if !decodeBody(w, r, &req) {
		return
	}
	account, err := s.ledger.UpdateAccount(r.Context(), workspaceID, r.PathValue("accountID"), req.toInput())
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.purgeWorkspace(workspaceID)
	writeJSON(w, http.StatusOK, toAccountPayload(account))
}

func (s *Server) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	workspaceID := r.PathValue("workspaceID")
	if err := s.ledger.DeleteAccount(r.Context(), workspaceID, r.PathValue("accountID")); err != nil {
		writeError(w, r, err)
		return
	}
	s.purgeWorkspace(workspaceID)
	w.WriteHeader(http.StatusNoContent)
}
