package http

import (
	"net/http"

	"github.com/trident-energy/riskregister/pkg/domain/interfaces"
)

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, err := pageFrom(r)
	if err != nil {
		respondDetail(ctx, w, http.StatusBadRequest, err.Error())
		return
	}

	var filter interfaces.UserFilter
	if filter.RoleID, err = queryOptInt64(r, "role_id"); err != nil {
		respondDetail(ctx, w, http.StatusBadRequest, err.Error())
		return
	}
	if filter.CountryID, err = queryOptInt64(r, "country_id"); err != nil {
		respondDetail(ctx, w, http.StatusBadRequest, err.Error())
		return
	}
	if filter.IsActive, err = queryOptBool(r, "is_active"); err != nil {
		respondDetail(ctx, w, http.StatusBadRequest, err.Error())
		return
	}
	// The listing has always defaulted to active users only; pass
	// is_active=false explicitly to see deactivated accounts.
	if filter.IsActive == nil {
		active := true
		filter.IsActive = &active
	}

	users, err := s.uc.User.List(ctx, filter, page)
	if err != nil {
		respondError(ctx, w, err, "User listing failed")
		return
	}
	respondJSON(ctx, w, http.StatusOK, users)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		respondDetail(ctx, w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := s.uc.User.Get(ctx, id)
	if err != nil {
		respondError(ctx, w, err, "User not found")
		return
	}
	respondJSON(ctx, w, http.StatusOK, user)
}

func (s *Server) handleUserCount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	count, err := s.uc.User.Count(ctx)
	if err != nil {
		respondError(ctx, w, err, "User count failed")
		return
	}
	respondJSON(ctx, w, http.StatusOK, count)
}
