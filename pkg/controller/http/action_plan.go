package http

import (
	"net/http"

	"github.com/trident-energy/riskregister/pkg/domain/interfaces"
)

func (s *Server) handleListActionPlans(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, err := pageFrom(r)
	if err != nil {
		respondDetail(ctx, w, http.StatusBadRequest, err.Error())
		return
	}

	filter := interfaces.ActionPlanFilter{
		Status: queryOptString(r, "status"),
	}

	plans, err := s.uc.ActionPlan.List(ctx, filter, page)
	if err != nil {
		respondError(ctx, w, err, "Action plan listing failed")
		return
	}
	respondJSON(ctx, w, http.StatusOK, plans)
}
