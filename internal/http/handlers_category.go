package http

import (
	"net/http"

	"finbook/internal/core"
	"finbook/internal/services"
)

type categoryRequest struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	workspaceID := r.PathValue("workspaceID")
	var req categoryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	category, err := s.ledger.CreateCategory(r.Context(), workspaceID, services.CategoryInput{Name: req.Name, Kind: core.CategoryKind(req.Kind)})
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.purgeWorkspace(workspaceID)
	writeJSON(w, http.StatusCreated, toCategoryPayload(category))
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.ledger.ListCategories(r.Context(), r.PathValue("workspaceID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	out := make([]categoryPayload, 0, len(categories))
	for _, c := range categories {
		out = append(out, toCategoryPayload(c))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	workspaceID := r.PathValue("workspaceID")
	var req categoryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	category, err := s.ledger.UpdateCategory(r.Context(), workspaceID, r.PathValue("categoryID"), services.CategoryInput{Name: req.Name, Kind: core.CategoryKind(req.Kind)})
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.purgeWorkspace(workspaceID)
	writeJSON(w, http.StatusOK, toCategoryPayload(category))
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	workspaceID := r.PathValue("workspaceID")
	if err := s.ledger.DeleteCategory(r.Context(), workspaceID, r.PathValue("categoryID")); err != nil {
		writeError(w, r, err)
		return
	}
	s.purgeWorkspace(workspaceID)
	w.WriteHeader(http.StatusNoContent)
}
