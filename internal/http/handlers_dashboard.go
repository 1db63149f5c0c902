package http

import (
	"fmt"
	"net/http"

	"finbook/internal/core"
	"finbook/internal/services"
)

type budgetRequest struct {
	Lines []budgetLineRequest `json:"lines"`
}

type budgetLineRequest struct {
	CategoryID string `json:"category_id"`
	Planned    string `json:"planned"`
}

func (s *Server) handleMonthlySummary(w http.ResponseWriter, r *http.Request) {
	workspaceID := r.PathValue("workspaceID")
	months := queryInt(r, "months", 0)
	cacheKey := fmt.Sprintf("%s|summary|%d", workspaceID, months)

	if cached, ok := s.dashboardCache.Get(cacheKey); ok {
		writeMonthSummaries(w, cached)
		return
	}

	summaries, err := s.dashboard.MonthlySummary(r.Context(), workspaceID, months)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.dashboardCache.Set(cacheKey, summaries)
	writeMonthSummaries(w, summaries)
}

func writeMonthSummaries(w http.ResponseWriter, summaries []core.MonthSummary) {
	out := make([]monthSummaryPayload, 0, len(summaries))
	for _, m := range summaries {
		out = append(out, toMonthSummaryPayload(m))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleTopCategories(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	limit := queryInt(r, "limit", 0)

	totals, err := s.dashboard.TopCategories(r.Context(), r.PathValue("workspaceID"), month, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	out := make([]categoryTotalPayload, 0, len(totals))
	for _, t := range totals {
		out = append(out, toCategoryTotalPayload(t))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleUpsertBudget(w http.ResponseWriter, r *http.Request) {
	workspaceID := r.PathValue("workspaceID")
	month := r.PathValue("month")
	var req budgetRequest
	if !decodeBody(w, r, &req) {
		return
	}
	inputs := make([]services.BudgetInput, 0, len(req.Lines))
	for _, line := range req.Lines {
		inputs = append(inputs, services.BudgetInput{CategoryID: line.CategoryID, Planned: line.Planned})
	}
	if err := s.dashboard.UpsertBudget(r.Context(), workspaceID, month, inputs); err != nil {
		writeError(w, r, err)
		return
	}
	s.purgeWorkspace(workspaceID)
	s.writeBudgetReport(w, r, workspaceID, month)
}

func (s *Server) handleBudgetReport(w http.ResponseWriter, r *http.Request) {
	s.writeBudgetReport(w, r, r.PathValue("workspaceID"), r.PathValue("month"))
}

func (s *Server) writeBudgetReport(w http.ResponseWriter, r *http.Request, workspaceID, month string) {
	lines, err := s.dashboard.BudgetReport(r.Context(), workspaceID, month)
	if err != nil {
		writeError(w, r, err)
		return
	}
	out := make([]budgetLinePayload, 0, len(lines))
	for _, line := range lines {
		out = append(out, toBudgetLinePayload(line))
	}
	writeJSON(w, http.StatusOK, out)
}
