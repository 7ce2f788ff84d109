package services

import (
	"context"

	"github.com/vytor/chessdash/internal/errors"
	"github.com/vytor/chessdash/internal/logger"
	"github.com/vytor/chessdash/internal/metrics"
	"github.com/vytor/chessdash/internal/models"
	"github.com/vytor/chessdash/internal/prediction"
)

// PredictionService handles game outcome predictions
type PredictionService interface {
	Predict(ctx context.Context, ratingDiff int, perspective models.Perspective) (*models.PredictionResult, error)
	Ready() bool
}

type predictionService struct {
	classifier prediction.Classifier
	metrics    *metrics.Metrics
}

// NewPredictionService creates a new PredictionService
func NewPredictionService(classifier prediction.Classifier, m *metrics.Metrics) PredictionService {
	return &predictionService{classifier: classifier, metrics: m}
}

func (s *predictionService) Predict(ctx context.Context, ratingDiff int, perspective models.Perspective) (*models.PredictionResult, error) {
	log := logger.FromContext(ctx)
	log.Debug("predicting outcome: rating_diff=%d, perspective=%s", ratingDiff, perspective)

	if err := prediction.ValidateRatingDiff(ratingDiff); err != nil {
		return nil, errors.NewValidationError("rating_diff", err.Error())
	}
	if s.classifier == nil {
		return nil, errors.NewUnavailableError("outcome model", nil)
	}

	outcome, err := prediction.Predict(ratingDiff, perspective, s.classifier)
	if err != nil {
		log.Error("failed to predict outcome: %v", err)
		return nil, errors.NewInternalError(err)
	}

	s.metrics.PredictionServed(perspective.String())

	return &models.PredictionResult{
		RatingDiff:  ratingDiff,
		Perspective: perspective.String(),
		Outcome:     outcome,
	}, nil
}

// Ready reports whether a classifier is loaded.
func (s *predictionService) Ready() bool {
	return s.classifier != nil
}
