package repository

import (
	"context"

	"github.com/vytor/chessdash/internal/models"
)

// OpeningRepository handles opening catalog data access
type OpeningRepository interface {
	ReplaceAll(ctx context.Context, openings []models.OpeningRecord) error
	List(ctx context.Context, filter models.OpeningFilter) ([]models.OpeningRecord, error)
	Get(ctx context.Context, name string) (*models.OpeningRecord, error)
	Count(ctx context.Context) (int, error)
}
