package api

import (
	"encoding/json"
	"net/http"

	"github.com/vytor/chessdash/internal/errors"
	"github.com/vytor/chessdash/internal/models"
)

const maxPredictBody = 1 << 12

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	var req models.PredictionRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPredictBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid request body: "+err.Error()))
		return
	}

	perspective, err := models.ParsePerspective(req.Perspective)
	if err != nil {
		handleError(w, r, errors.NewValidationError(paramPerspective, err.Error()))
		return
	}

	result, err := s.PredictionService.Predict(r.Context(), req.RatingDiff, perspective)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, result)
}
