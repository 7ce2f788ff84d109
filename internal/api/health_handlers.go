package api

import (
	"context"
	"net/http"
	"time"

	"github.com/vytor/chessdash/internal/logger"
)

const readyTimeout = 2 * time.Second

// handleHealth returns a liveness probe - always returns 200 OK.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// handleReady returns 200 once the opening catalog answers and the outcome
// model is loaded, 503 otherwise.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()
	log := logger.FromContext(ctx)

	if s.DB == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("Database unavailable"))
		return
	}
	if err := s.DB.Ping(ctx); err != nil {
		log.Warn("readiness check failed - database: %v", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("Database unavailable"))
		return
	}

	if s.PredictionService == nil || !s.PredictionService.Ready() {
		log.Warn("readiness check failed - outcome model not loaded")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("Model unavailable"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Ready"))
}
