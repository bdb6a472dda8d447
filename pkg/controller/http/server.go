package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/trident-energy/riskregister/pkg/usecase"
)

type Server struct {
	router  *chi.Mux
	uc      *usecase.UseCases
	version string
}

type Options func(*Server)

// WithVersion sets the version string reported by the root endpoint.
func WithVersion(version string) Options {
	return func(s *Server) {
		s.version = version
	}
}

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router:  r,
		uc:      uc,
		version: "dev",
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Get("/", s.handleListUsers)
			r.Get("/count", s.handleUserCount)
			r.Get("/{id}", s.handleGetUser)
		})
		r.Get("/roles", s.handleListRoles)
		r.Get("/countries", s.handleListCountries)
		r.Route("/risks", func(r chi.Router) {
			r.Get("/", s.handleListRisks)
			r.Get("/summary/by-country", s.handleRiskSummaryByCountry)
			r.Get("/summary/heatmap", s.handleRiskHeatmap)
			r.Get("/{id}", s.handleGetRisk)
		})
		r.Get("/action-plans", s.handleListActionPlans)
		r.Get("/dashboard/summary", s.handleDashboardSummary)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	respondJSON(r.Context(), w, http.StatusOK, map[string]string{
		"status":  "online",
		"message": "Trident Energy Risk Register API",
		"version": s.version,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(r.Context(), w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
