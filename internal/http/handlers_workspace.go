package http

import "net/http"

type workspaceRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleCreateWorkspace(w http.ResponseWriter, r *http.Request) {
	var req workspaceRequest
	if !decodeBody(w, r, &req) {
		return
	}
	ws, err := s.ledger.CreateWorkspace(r.Context(), req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toWorkspacePayload(ws))
}

func (s *Server) handleListWorkspaces(w http.ResponseWriter, r *http.Request) {
	workspaces, err := s.ledger.ListWorkspaces(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	out := make([]workspacePayload, 0, len(workspaces))
	for _, ws := range workspaces {
		out = append(out, toWorkspacePayload(ws))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetWorkspace(w http.ResponseWriter, r *http.Request) {
	ws, err := s.ledger.GetWorkspace(r.Context(), r.PathValue("workspaceID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWorkspacePayload(ws))
}

func (s *Server) handleRenameWorkspace(w http.ResponseWriter, r *http.Request) {
	workspaceID := r.PathValue("workspaceID")
	var req workspaceRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := s.ledger.RenameWorkspace(r.Context(), workspaceID, req.Name); err != nil {
		writeError(w, r, err)
		return
	}
	ws, err := s.ledger.GetWorkspace(r.Context(), workspaceID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWorkspacePayload(ws))
}
