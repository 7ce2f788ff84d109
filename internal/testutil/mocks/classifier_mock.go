package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockClassifier is a mock implementation of prediction.Classifier
type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) PredictProba(features [][]float64) ([][]float64, error) {
	args := m.Called(features)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]float64), args.Error(1)
}
