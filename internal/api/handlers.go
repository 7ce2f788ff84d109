package api

import (
	"context"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/vytor/chessdash/internal/logger"
	"github.com/vytor/chessdash/internal/metrics"
	"github.com/vytor/chessdash/internal/services"
)

// Pinger reports whether the opening catalog is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	OpeningService    services.OpeningService
	PredictionService services.PredictionService
	PieceService      services.PieceService
	Assets            http.Handler
	DB                Pinger
	Metrics           *metrics.Metrics
	Templates         *template.Template
	WSEnabled         bool
}

type pageData map[string]any

func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data pageData) {
	if data == nil {
		data = pageData{}
	}

	log := logger.FromContext(r.Context())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.Templates.ExecuteTemplate(w, name, data); err != nil {
		log.Error("failed to render template %s: %v", name, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// writeJSON encodes v before writing the header so an unencodable value
// becomes a 500 instead of a truncated success.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}
