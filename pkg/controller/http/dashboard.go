package http

import "net/http"

func (s *Server) handleDashboardSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := s.uc.Dashboard.Summary(ctx)
	if err != nil {
		respondError(ctx, w, err, "Dashboard summary failed")
		return
	}
	respondJSON(ctx, w, http.StatusOK, summary)
}
