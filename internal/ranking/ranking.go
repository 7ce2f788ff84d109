// Package ranking orders openings by a weighted sum of their statistics.
//
// Every criterion is multiplied by its slider weight and the products are
// added up; negative weights invert a criterion's influence. Ranking is a pure
// function of the table, the weights and the perspective.
package ranking

import (
	"sort"

	"github.com/vytor/chessdash/internal/models"
)

// Ordering modes reported alongside a ranking.
const (
	ModeScore        = "score"
	ModeAlphabetical = "alphabetical"
)

// Score computes the composite score of one opening.
func Score(o models.OpeningRecord, w models.Weights, p models.Perspective) float64 {
	return o.Effectiveness(p)*w.Effectiveness +
		o.Aggressivity*w.Aggressivity +
		o.Volatility*w.Volatility +
		o.Popularity*w.Popularity
}

// Mode returns how Rank orders openings for the given weights.
func Mode(w models.Weights) string {
	if w.IsZero() {
		return ModeAlphabetical
	}
	return ModeScore
}

// Rank scores every opening and returns a new slice ordered best first.
//
// When all weights are zero every score is zero, so openings are listed by
// name instead. Otherwise openings with equal scores keep their input order.
// The input slice is not modified.
func Rank(openings []models.OpeningRecord, w models.Weights, p models.Perspective) []models.RankedOpening {
	ranked := make([]models.RankedOpening, len(openings))
	for i, o := range openings {
		ranked[i] = models.RankedOpening{Name: o.Name, Score: Score(o, w, p)}
	}

	if w.IsZero() {
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Name < ranked[j].Name
		})
		return ranked
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// Names extracts the opening names of a ranking in order.
func Names(ranked []models.RankedOpening) []string {
	names := make([]string, len(ranked))
	for i, r := range ranked {
		names[i] = r.Name
	}
	return names
}
