package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/trident-energy/riskregister/pkg/domain/interfaces"
)

const (
	defaultSkip  = 0
	defaultLimit = 100
)

// errBadParam marks a malformed query parameter. These are rejected with
// 400 before any query runs.
var errBadParam = goerr.New("invalid query parameter")

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, goerr.Wrap(errBadParam, "must be a non-negative integer", goerr.V("param", name), goerr.V("value", raw))
	}
	return v, nil
}

func queryOptInt64(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, goerr.Wrap(errBadParam, "must be an integer", goerr.V("param", name), goerr.V("value", raw))
	}
	return &v, nil
}

func queryOptBool(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, goerr.Wrap(errBadParam, "must be a boolean", goerr.V("param", name), goerr.V("value", raw))
	}
	return &v, nil
}

func queryOptString(r *http.Request, name string) *string {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	return &raw
}

func pageFrom(r *http.Request) (interfaces.Page, error) {
	skip, err := queryInt(r, "skip", defaultSkip)
	if err != nil {
		return interfaces.Page{}, err
	}
	limit, err := queryInt(r, "limit", defaultLimit)
	if err != nil {
		return interfaces.Page{}, err
	}
	return interfaces.Page{Skip: skip, Limit: limit}, nil
}

func pathID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, goerr.Wrap(errBadParam, "must be an integer", goerr.V("param", param), goerr.V("value", raw))
	}
	return v, nil
}
