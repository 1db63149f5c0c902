package http

import (
	"net/http"
	"strconv"

	"finbook/internal/services"
	"finbook/internal/storage"
)

type transactionRequest struct {
	AccountID   string `json:"account_id"`
	CategoryID  string `json:"category_id"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

func (r transactionRequest) toInput() services.TransactionInput {
	return services.TransactionInput{
		AccountID:   r.AccountID,
		CategoryID:  r.CategoryID,
		Date:        r.Date,
		Description: r.Description,
		Amount:      r.Amount,
	}
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	workspaceID := r.PathValue("workspaceID")
	var req transactionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	txn, err := s.transactions.Create(r.Context(), workspaceID, req.toInput())
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.purgeWorkspace(workspaceID)
	writeJSON(w, http.StatusCreated, toTransactionPayload(txn))
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	filter := storage.TransactionFilter{
		AccountID: r.URL.Query().Get("account"),
		Limit:     queryInt(r, "limit", 0),
	}
	txns, err := s.transactions.List(r.Context(), r.PathValue("workspaceID"), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	out := make([]transactionPayload, 0, len(txns))
	for _, t := range txns {
		out = append(out, toTransactionPayload(t))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetTransaction(w http.ResponseWriter, r *http.Request) {
	txn, err := s.transactions.Get(r.Context(), r.PathValue("workspaceID"), r.PathValue("transactionID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTransactionPayload(txn))
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	workspaceID := r.PathValue("workspaceID")
	var req transactionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	txn, err := s.transactions.Update(r.Context(), workspaceID, r.PathValue("transactionID"), req.toInput())
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.purgeWorkspace(workspaceID)
	writeJSON(w, http.StatusOK, toTransactionPayload(txn))
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	workspaceID := r.PathValue("workspaceID")
	if err := s.transactions.Delete(r.Context(), workspaceID, r.PathValue("transactionID")); err != nil {
		writeError(w, r, err)
		return
	}
	s.purgeWorkspace(workspaceID)
	w.WriteHeader(http.StatusNoContent)
}

// queryInt reads a non-negative integer query parameter, falling back on
// absence or junk.
func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
