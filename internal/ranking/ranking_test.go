package ranking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/chessdash/internal/models"
	"github.com/vytor/chessdash/internal/ranking"
)

func italianAndSicilian() []models.OpeningRecord {
	return []models.OpeningRecord{
		{Name: "Italian Game", EffectivenessWhite: 0.6, EffectivenessBlack: 0.4, Aggressivity: 0.5, Volatility: 0.3, Popularity: 0.9},
		{Name: "Sicilian Defense", EffectivenessWhite: 0.3, EffectivenessBlack: 0.7, Aggressivity: 0.8, Volatility: 0.6, Popularity: 0.95},
	}
}

func TestRank_EffectivenessWhite(t *testing.T) {
	ranked := ranking.Rank(italianAndSicilian(), models.Weights{Effectiveness: 1}, models.White)

	require.Len(t, ranked, 2)
	assert.Equal(t, "Italian Game", ranked[0].Name)
	assert.InDelta(t, 0.6, ranked[0].Score, 1e-9)
	assert.Equal(t, "Sicilian Defense", ranked[1].Name)
	assert.InDelta(t, 0.3, ranked[1].Score, 1e-9)
}

func TestRank_EffectivenessBlackUsesBlackColumn(t *testing.T) {
	ranked := ranking.Rank(italianAndSicilian(), models.Weights{Effectiveness: 1}, models.Black)

	assert.Equal(t, []string{"Sicilian Defense", "Italian Game"}, ranking.Names(ranked))
	assert.InDelta(t, 0.7, ranked[0].Score, 1e-9)
	assert.InDelta(t, 0.4, ranked[1].Score, 1e-9)
}

func TestRank_ZeroWeightsFallBackToNameOrder(t *testing.T) {
	openings := []models.OpeningRecord{
		{Name: "Ruy Lopez", EffectivenessWhite: 0.9, Popularity: 0.9},
		{Name: "Alekhine Defense", EffectivenessWhite: 0.1, Popularity: 0.1},
		{Name: "Queen's Gambit: Declined", EffectivenessWhite: 0.5},
		{Name: "Caro-Kann Defense", EffectivenessWhite: 0.7},
	}

	for _, p := range models.Perspectives {
		ranked := ranking.Rank(openings, models.Weights{}, p)
		assert.Equal(t, []string{
			"Alekhine Defense",
			"Caro-Kann Defense",
			"Queen's Gambit: Declined",
			"Ruy Lopez",
		}, ranking.Names(ranked), "perspective %s", p)
		for _, r := range ranked {
			assert.Zero(t, r.Score)
		}
	}
}

func TestRank_ZeroWeightsDiffersFromScoreOrder(t *testing.T) {
	openings := []models.OpeningRecord{
		{Name: "Zukertort Opening", EffectivenessWhite: 0.9},
		{Name: "Bird Opening", EffectivenessWhite: 0.2},
	}

	byScore := ranking.Rank(openings, models.Weights{Effectiveness: 1}, models.White)
	byName := ranking.Rank(openings, models.Weights{}, models.White)

	assert.Equal(t, []string{"Zukertort Opening", "Bird Opening"}, ranking.Names(byScore))
	assert.Equal(t, []string{"Bird Opening", "Zukertort Opening"}, ranking.Names(byName))
}

func TestRank_NegativeWeightInvertsCriterion(t *testing.T) {
	openings := []models.OpeningRecord{
		{Name: "Calm", Volatility: 0.1},
		{Name: "Wild", Volatility: 0.9},
	}

	calmFirst := ranking.Rank(openings, models.Weights{Volatility: -2.5}, models.White)
	wildFirst := ranking.Rank(openings, models.Weights{Volatility: 2.5}, models.White)

	assert.Equal(t, []string{"Calm", "Wild"}, ranking.Names(calmFirst))
	assert.Equal(t, []string{"Wild", "Calm"}, ranking.Names(wildFirst))
	assert.InDelta(t, -0.25, calmFirst[0].Score, 1e-9)
}

func TestRank_CombinesAllCriteria(t *testing.T) {
	o := models.OpeningRecord{
		Name:               "Scotch Game",
		EffectivenessWhite: 0.5,
		EffectivenessBlack: 0.2,
		Aggressivity:       0.4,
		Volatility:         0.3,
		Popularity:         0.8,
	}
	w := models.Weights{Effectiveness: 1, Aggressivity: -0.5, Volatility: 2, Popularity: 0.5}

	assert.InDelta(t, 0.5-0.2+0.6+0.4, ranking.Score(o, w, models.White), 1e-9)
	assert.InDelta(t, 0.2-0.2+0.6+0.4, ranking.Score(o, w, models.Black), 1e-9)
}

func TestRank_EqualScoresKeepInputOrder(t *testing.T) {
	openings := []models.OpeningRecord{
		{Name: "C", Popularity: 0.5},
		{Name: "A", Popularity: 0.5},
		{Name: "B", Popularity: 0.9},
		{Name: "D", Popularity: 0.5},
	}

	ranked := ranking.Rank(openings, models.Weights{Popularity: 1}, models.White)

	assert.Equal(t, []string{"B", "C", "A", "D"}, ranking.Names(ranked))
}

func TestRank_Deterministic(t *testing.T) {
	openings := italianAndSicilian()
	w := models.Weights{Effectiveness: 0.5, Aggressivity: 1.5, Volatility: -1, Popularity: 3}

	first := ranking.Rank(openings, w, models.Black)
	second := ranking.Rank(openings, w, models.Black)

	assert.Equal(t, first, second)
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	openings := []models.OpeningRecord{
		{Name: "B", Popularity: 0.1},
		{Name: "A", Popularity: 0.9},
	}
	before := append([]models.OpeningRecord(nil), openings...)

	_ = ranking.Rank(openings, models.Weights{Popularity: 1}, models.White)
	_ = ranking.Rank(openings, models.Weights{}, models.White)

	assert.Equal(t, before, openings)
}

func TestRank_EmptyTable(t *testing.T) {
	ranked := ranking.Rank(nil, models.Weights{Effectiveness: 1}, models.White)
	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)

	ranked = ranking.Rank([]models.OpeningRecord{}, models.Weights{}, models.Black)
	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)
}

func TestRank_HigherEffectivenessWeightFavorsAboveMeanOpening(t *testing.T) {
	openings := []models.OpeningRecord{
		{Name: "Strong", EffectivenessWhite: 0.8, Popularity: 0.2},
		{Name: "Popular", EffectivenessWhite: 0.2, Popularity: 0.9},
	}

	position := func(ranked []models.RankedOpening, name string) int {
		for i, r := range ranked {
			if r.Name == name {
				return i
			}
		}
		return -1
	}

	low := ranking.Rank(openings, models.Weights{Effectiveness: 0.5, Popularity: 1}, models.White)
	high := ranking.Rank(openings, models.Weights{Effectiveness: 2.5, Popularity: 1}, models.White)

	assert.Equal(t, 1, position(low, "Strong"))
	assert.Equal(t, 0, position(high, "Strong"))
}

func TestMode(t *testing.T) {
	assert.Equal(t, ranking.ModeAlphabetical, ranking.Mode(models.Weights{}))
	assert.Equal(t, ranking.ModeScore, ranking.Mode(models.Weights{Aggressivity: -0.5}))
}
