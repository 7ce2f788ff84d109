package testutil

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vytor/chessdash/internal/db"
	"github.com/vytor/chessdash/internal/models"
)

// NewTestDB creates an in-memory SQLite catalog with all migrations applied.
func NewTestDB(t *testing.T) *sql.DB {
	database, err := db.Open("file::memory:")
	require.NoError(t, err)
	return database.DB
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}

// SampleOpenings returns a small opening table in file order.
func SampleOpenings() []models.OpeningRecord {
	return []models.OpeningRecord{
		{Name: "Italian Game", EffectivenessWhite: 0.6, EffectivenessBlack: 0.4, Aggressivity: 0.5, Volatility: 0.3, Popularity: 0.9},
		{Name: "Sicilian Defense", EffectivenessWhite: 0.3, EffectivenessBlack: 0.7, Aggressivity: 0.8, Volatility: 0.6, Popularity: 0.95},
		{Name: "Ruy Lopez", EffectivenessWhite: 0.65, EffectivenessBlack: 0.35, Aggressivity: 0.4, Volatility: 0.2, Popularity: 0.8},
		{Name: "French Defense: Winawer Variation", EffectivenessWhite: 0.45, EffectivenessBlack: 0.55, Aggressivity: 0.6, Volatility: 0.7, Popularity: 0.3},
		{Name: "Queen's Gambit Accepted", EffectivenessWhite: 0.5, EffectivenessBlack: 0.5, Aggressivity: 0.3, Volatility: 0.4, Popularity: 0.6},
	}
}
