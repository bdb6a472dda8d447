package http

import (
	"net/http"

	"github.com/trident-energy/riskregister/pkg/domain/interfaces"
	"github.com/trident-energy/riskregister/pkg/domain/types"
)

func (s *Server) handleListRisks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, err := pageFrom(r)
	if err != nil {
		respondDetail(ctx, w, http.StatusBadRequest, err.Error())
		return
	}

	var filter interfaces.RiskFilter
	if filter.CountryID, err = queryOptInt64(r, "country_id"); err != nil {
		respondDetail(ctx, w, http.StatusBadRequest, err.Error())
		return
	}
	if filter.StatusID, err = queryOptInt64(r, "status_id"); err != nil {
		respondDetail(ctx, w, http.StatusBadRequest, err.Error())
		return
	}
	if raw := queryOptString(r, "classification"); raw != nil {
		// Any string is accepted as an equality filter; unknown labels just
		// match nothing.
		cls := types.Classification(*raw)
		filter.Classification = &cls
	}

	risks, err := s.uc.Risk.List(ctx, filter, page)
	if err != nil {
		respondError(ctx, w, err, "Risk listing failed")
		return
	}
	respondJSON(ctx, w, http.StatusOK, risks)
}

func (s *Server) handleGetRisk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		respondDetail(ctx, w, http.StatusBadRequest, err.Error())
		return
	}

	risk, err := s.uc.Risk.Get(ctx, id)
	if err != nil {
		respondError(ctx, w, err, "Risk not found")
		return
	}
	respondJSON(ctx, w, http.StatusOK, risk)
}

func (s *Server) handleRiskSummaryByCountry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := s.uc.Risk.SummaryByCountry(ctx)
	if err != nil {
		respondError(ctx, w, err, "Risk summary failed")
		return
	}
	respondJSON(ctx, w, http.StatusOK, summary)
}

func (s *Server) handleRiskHeatmap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	heatmap, err := s.uc.Risk.Heatmap(ctx)
	if err != nil {
		respondError(ctx, w, err, "Risk heatmap failed")
		return
	}
	respondJSON(ctx, w, http.StatusOK, heatmap)
}
