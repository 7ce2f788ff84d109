package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/vytor/chessdash/internal/errors"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	if s.Metrics != nil {
		r.Use(s.metricsMiddleware)
	}
	r.Use(securityHeadersMiddleware)
	r.Use(middleware.StripSlashes)

	r.Get("/", s.handleDashboard)
	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Get("/pieces", s.handlePieces)
		r.Get("/pieces/{piece}", s.handlePieceImages)
		r.Get("/openings/rank", s.handleRankOpenings)
		r.Get("/openings/{name}", s.handleOpeningDetail)
		r.Post("/predict", s.handlePredict)
	})

	if s.WSEnabled {
		r.Get("/ws/rank", s.handleRankSocket)
	}
	if s.Metrics != nil {
		r.Handle("/metrics", s.Metrics.Handler())
	}
	if s.Assets != nil {
		r.Handle("/assets/*", http.StripPrefix("/assets", s.Assets))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handleError(w, r, errors.NewNotFoundError("page", r.URL.Path))
	})
	return r
}
