package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/trident-energy/riskregister/pkg/domain/interfaces"
	"github.com/trident-energy/riskregister/pkg/utils/errutil"
	"github.com/trident-energy/riskregister/pkg/utils/safe"
)

func respondJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(ctx, w, data)
}

// respondDetail writes a {"detail": ...} body, matching the error shape the
// API has always exposed.
func respondDetail(ctx context.Context, w http.ResponseWriter, status int, detail string) {
	respondJSON(ctx, w, status, map[string]string{"detail": detail})
}

// respondError maps a failed operation to a response: ErrNotFound becomes a
// 404 with the given detail message, anything else a logged 500.
func respondError(ctx context.Context, w http.ResponseWriter, err error, notFoundDetail string) {
	if errors.Is(err, interfaces.ErrNotFound) {
		respondDetail(ctx, w, http.StatusNotFound, notFoundDetail)
		return
	}
	errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
}
