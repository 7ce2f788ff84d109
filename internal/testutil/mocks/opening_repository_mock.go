package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/chessdash/internal/models"
)

// MockOpeningRepository is a mock implementation of repository.OpeningRepository
type MockOpeningRepository struct {
	mock.Mock
}

func (m *MockOpeningRepository) ReplaceAll(ctx context.Context, openings []models.OpeningRecord) error {
	args := m.Called(ctx, openings)
	return args.Error(0)
}

func (m *MockOpeningRepository) List(ctx context.Context, filter models.OpeningFilter) ([]models.OpeningRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OpeningRecord), args.Error(1)
}

func (m *MockOpeningRepository) Get(ctx context.Context, name string) (*models.OpeningRecord, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OpeningRecord), args.Error(1)
}

func (m *MockOpeningRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
