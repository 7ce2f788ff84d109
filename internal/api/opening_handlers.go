package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/chessdash/internal/errors"
	"github.com/vytor/chessdash/internal/models"
	"github.com/vytor/chessdash/internal/ranking"
)

type rankResponse struct {
	Perspective string                 `json:"perspective"`
	Mode        string                 `json:"mode"`
	Weights     models.Weights         `json:"weights"`
	Openings    []models.RankedOpening `json:"openings"`
}

func (s *Server) handleRankOpenings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	perspective, err := parsePerspective(query)
	if err != nil {
		handleError(w, r, err)
		return
	}
	weights, err := parseWeights(query)
	if err != nil {
		handleError(w, r, err)
		return
	}

	ranked, err := s.OpeningService.Rank(r.Context(), weights, perspective, query.Get(paramQuery))
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, rankResponse{
		Perspective: perspective.String(),
		Mode:        ranking.Mode(weights),
		Weights:     weights,
		Openings:    ranked,
	})
}

func (s *Server) handleOpeningDetail(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if r.URL.RawPath != "" {
		unescaped, err := url.PathUnescape(name)
		if err != nil {
			handleError(w, r, errors.NewBadRequestError("malformed opening name"))
			return
		}
		name = unescaped
	}

	perspective, err := parsePerspective(r.URL.Query())
	if err != nil {
		handleError(w, r, err)
		return
	}

	detail, err := s.OpeningService.Detail(r.Context(), name, perspective)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, detail)
}
