package http

import "net/http"

func (s *Server) handleListRoles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	roles, err := s.uc.Reference.Roles(ctx)
	if err != nil {
		respondError(ctx, w, err, "Role listing failed")
		return
	}
	respondJSON(ctx, w, http.StatusOK, roles)
}

func (s *Server) handleListCountries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	countries, err := s.uc.Reference.Countries(ctx)
	if err != nil {
		respondError(ctx, w, err, "Country listing failed")
		return
	}
	respondJSON(ctx, w, http.StatusOK, countries)
}
