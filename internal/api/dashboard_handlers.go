package api

import (
	"net/http"

	"github.com/vytor/chessdash/internal/errors"
	"github.com/vytor/chessdash/internal/logger"
	"github.com/vytor/chessdash/internal/models"
)

const defaultPiece = models.Bishop

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)
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
	piece := defaultPiece
	if raw := query.Get(paramPiece); raw != "" {
		if piece, err = parsePiece(raw); err != nil {
			handleError(w, r, errors.NewValidationError(paramPiece, "unknown piece"))
			return
		}
	}
	ratingDiff, err := parseRatingDiff(query)
	if err != nil {
		handleError(w, r, err)
		return
	}

	ranked, err := s.OpeningService.Rank(ctx, weights, perspective, query.Get(paramQuery))
	if err != nil {
		handleError(w, r, err)
		return
	}

	data := pageData{
		"perspectives": models.Perspectives,
		"perspective":  perspective,
		"pieces":       s.PieceService.Pieces(),
		"piece":        piece,
		"pieceImages":  s.PieceService.Images(perspective, piece),
		"weights":      weights,
		"minWeight":    models.MinWeight,
		"maxWeight":    models.MaxWeight,
		"weightStep":   models.WeightStep,
		"query":        query.Get(paramQuery),
		"ranked":       ranked,
		"ratingDiff":   ratingDiff,
		"wsEnabled":    s.WSEnabled,
	}

	if selected := selectOpening(ranked, query.Get(paramOpening)); selected != "" {
		data["opening"] = selected
		detail, err := s.OpeningService.Detail(ctx, selected, perspective)
		if err != nil {
			log.Warn("failed to load opening detail: %v", err)
		} else {
			data["detail"] = detail
		}
	}

	// The form always carries rating_diff, so only the Predict button asks for a prediction.
	if query.Has(paramPredict) {
		result, err := s.PredictionService.Predict(ctx, ratingDiff, perspective)
		if err != nil {
			if appErr, ok := errors.AsAppError(err); ok {
				data["predictionError"] = appErr.Message
			} else {
				data["predictionError"] = err.Error()
			}
		} else {
			data["prediction"] = result
		}
	}

	s.render(w, r, "dashboard.html", data)
}

// selectOpening keeps the requested opening when it is in the ranking and
// otherwise falls back to the top-ranked one. An empty ranking selects nothing.
func selectOpening(ranked []models.RankedOpening, requested string) string {
	if len(ranked) == 0 {
		return ""
	}
	for _, o := range ranked {
		if o.Name == requested {
			return o.Name
		}
	}
	return ranked[0].Name
}
