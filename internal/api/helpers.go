package api

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/vytor/chessdash/internal/errors"
	"github.com/vytor/chessdash/internal/models"
)

// Query parameters shared by the dashboard and the JSON endpoints.
const (
	paramPerspective   = "perspective"
	paramEffectiveness = "effectiveness"
	paramAggressivity  = "aggressivity"
	paramVolatility    = "volatility"
	paramPopularity    = "popularity"
	paramQuery         = "q"
	paramPiece         = "piece"
	paramOpening       = "opening"
	paramRatingDiff    = "rating_diff"
	paramPredict       = "predict"
)

func parsePerspective(values url.Values) (models.Perspective, error) {
	p, err := models.ParsePerspective(values.Get(paramPerspective))
	if err != nil {
		return models.White, errors.NewValidationError(paramPerspective, err.Error())
	}
	return p, nil
}

// parseWeights reads the four slider values. Missing values default to 0;
// range checks are left to the opening service.
func parseWeights(values url.Values) (models.Weights, error) {
	var w models.Weights
	fields := []struct {
		name string
		dst  *float64
	}{
		{paramEffectiveness, &w.Effectiveness},
		{paramAggressivity, &w.Aggressivity},
		{paramVolatility, &w.Volatility},
		{paramPopularity, &w.Popularity},
	}
	for _, f := range fields {
		raw := strings.TrimSpace(values.Get(f.name))
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.Weights{}, errors.NewValidationError(f.name, fmt.Sprintf("not a number: %q", raw))
		}
		*f.dst = v
	}
	return w, nil
}

func parseRatingDiff(values url.Values) (int, error) {
	raw := strings.TrimSpace(values.Get(paramRatingDiff))
	if raw == "" {
		return 0, nil
	}
	diff, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.NewValidationError(paramRatingDiff, fmt.Sprintf("not an integer: %q", raw))
	}
	return diff, nil
}

func parsePiece(raw string) (models.Piece, error) {
	if raw == "" {
		return models.Pieces[0], nil
	}
	piece, err := models.ParsePiece(raw)
	if err != nil {
		return 0, errors.NewNotFoundError("piece", raw)
	}
	return piece, nil
}
