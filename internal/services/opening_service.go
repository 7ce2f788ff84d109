package services

import (
	"context"

	"github.com/vytor/chessdash/internal/eco"
	"github.com/vytor/chessdash/internal/errors"
	"github.com/vytor/chessdash/internal/logger"
	"github.com/vytor/chessdash/internal/metrics"
	"github.com/vytor/chessdash/internal/models"
	"github.com/vytor/chessdash/internal/ranking"
	"github.com/vytor/chessdash/internal/repository"
)

// OpeningService handles opening ranking and detail lookups
type OpeningService interface {
	Rank(ctx context.Context, weights models.Weights, perspective models.Perspective, nameContains string) ([]models.RankedOpening, error)
	Detail(ctx context.Context, name string, perspective models.Perspective) (*models.OpeningDetail, error)
	Count(ctx context.Context) (int, error)
}

// OpeningBook resolves an opening name to its ECO entry.
type OpeningBook interface {
	Lookup(name string) (eco.Entry, bool)
}

// OpeningHeatmaps lists the heatmaps rendered for an opening.
type OpeningHeatmaps interface {
	OpeningHeatmaps(name string, perspective models.Perspective) []models.Image
}

type openingService struct {
	openingRepo repository.OpeningRepository
	book        OpeningBook
	heatmaps    OpeningHeatmaps
	metrics     *metrics.Metrics
}

// NewOpeningService creates a new OpeningService. book and m may be nil.
func NewOpeningService(openingRepo repository.OpeningRepository, book OpeningBook, heatmaps OpeningHeatmaps, m *metrics.Metrics) OpeningService {
	return &openingService{
		openingRepo: openingRepo,
		book:        book,
		heatmaps:    heatmaps,
		metrics:     m,
	}
}

func (s *openingService) Rank(ctx context.Context, weights models.Weights, perspective models.Perspective, nameContains string) ([]models.RankedOpening, error) {
	log := logger.FromContext(ctx)
	log.Debug("ranking openings: perspective=%s, weights=%+v, q=%q", perspective, weights, nameContains)

	if err := weights.Validate(); err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	openings, err := s.openingRepo.List(ctx, models.OpeningFilter{NameContains: nameContains})
	if err != nil {
		log.Error("failed to list openings: %v", err)
		return nil, errors.NewInternalError(err)
	}

	mode := ranking.Mode(weights)
	s.metrics.RankingComputed(perspective.String(), mode)

	return ranking.Rank(openings, weights, perspective), nil
}

func (s *openingService) Detail(ctx context.Context, name string, perspective models.Perspective) (*models.OpeningDetail, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting opening detail: name=%q, perspective=%s", name, perspective)

	if name == "" {
		return nil, errors.NewValidationError("name", "cannot be empty")
	}

	opening, err := s.openingRepo.Get(ctx, name)
	if err != nil {
		log.Error("failed to get opening: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if opening == nil {
		return nil, errors.NewNotFoundError("opening", name)
	}

	detail := &models.OpeningDetail{
		Opening:    *opening,
		LichessURL: eco.LichessURL(opening.Name),
		Heatmaps:   []models.Image{},
	}
	if s.book != nil {
		if entry, ok := s.book.Lookup(opening.Name); ok {
			detail.ECOCode = entry.Code
			detail.Moves = entry.Moves
		}
	}
	if s.heatmaps != nil {
		detail.Heatmaps = s.heatmaps.OpeningHeatmaps(opening.Name, perspective)
	}

	return detail, nil
}

func (s *openingService) Count(ctx context.Context) (int, error) {
	n, err := s.openingRepo.Count(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to count openings: %v", err)
		return 0, errors.NewInternalError(err)
	}
	return n, nil
}
