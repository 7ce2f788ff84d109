package prediction_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/chessdash/internal/models"
	"github.com/vytor/chessdash/internal/prediction"
	"github.com/vytor/chessdash/internal/testutil/mocks"
)

func fixedClassifier(features [][]float64, row []float64) *mocks.MockClassifier {
	c := new(mocks.MockClassifier)
	c.On("PredictProba", features).Return([][]float64{row}, nil)
	return c
}

func TestPredict_WhitePerspective(t *testing.T) {
	c := fixedClassifier([][]float64{{200}}, []float64{0.20, 0.25, 0.55})

	out, err := prediction.Predict(200, models.White, c)
	require.NoError(t, err)

	assert.InDelta(t, 0.55, out.Win, 1e-9)
	assert.InDelta(t, 0.20, out.Lose, 1e-9)
	assert.InDelta(t, 0.25, out.Tie, 1e-9)
	c.AssertExpectations(t)
}

func TestPredict_BlackNegatesDiffBeforeModelCall(t *testing.T) {
	c := fixedClassifier([][]float64{{200}}, []float64{0.20, 0.25, 0.55})

	out, err := prediction.Predict(-200, models.Black, c)
	require.NoError(t, err)

	assert.InDelta(t, 0.20, out.Win, 1e-9)
	assert.InDelta(t, 0.55, out.Lose, 1e-9)
	assert.InDelta(t, 0.25, out.Tie, 1e-9)
	c.AssertExpectations(t)
}

func TestPredict_OppositePerspectivesShareModelCall(t *testing.T) {
	for _, d := range []int{-800, -350, 0, 10, 420, 800} {
		c := fixedClassifier([][]float64{{float64(d)}}, []float64{0.3, 0.1, 0.6})

		white, err := prediction.Predict(d, models.White, c)
		require.NoError(t, err)
		black, err := prediction.Predict(-d, models.Black, c)
		require.NoError(t, err)

		assert.Equal(t, white.Tie, black.Tie)
		assert.Equal(t, white.Win, black.Lose)
		assert.Equal(t, white.Lose, black.Win)
		c.AssertNumberOfCalls(t, "PredictProba", 2)
	}
}

func TestPredict_SymmetricModelGivesSameOutcomeForBothSides(t *testing.T) {
	m, err := prediction.NewLogisticModel(prediction.Artifact{
		Classes:   []string{"BlackWin", "Tie", "WhiteWin"},
		Coef:      [][]float64{{-0.005}, {0}, {0.005}},
		Intercept: []float64{0.1, -1, 0.1},
	})
	require.NoError(t, err)

	for d := prediction.MinRatingDiff; d <= prediction.MaxRatingDiff; d += 50 {
		white, err := prediction.Predict(d, models.White, m)
		require.NoError(t, err)
		black, err := prediction.Predict(d, models.Black, m)
		require.NoError(t, err)

		assert.InDelta(t, white.Win, black.Win, 1e-12, "diff %d", d)
		assert.InDelta(t, white.Tie, black.Tie, 1e-12, "diff %d", d)
		assert.InDelta(t, white.Lose, black.Lose, 1e-12, "diff %d", d)
	}
}

func TestPredict_ProbabilitiesSumToOne(t *testing.T) {
	m, err := prediction.NewLogisticModel(prediction.Artifact{
		Classes:   []string{"BlackWin", "Tie", "WhiteWin"},
		Coef:      [][]float64{{-0.0061}, {0.0002}, {0.0059}},
		Intercept: []float64{-0.21, -1.93, 0.05},
	})
	require.NoError(t, err)

	for d := prediction.MinRatingDiff; d <= prediction.MaxRatingDiff; d += 10 {
		for _, p := range models.Perspectives {
			out, err := prediction.Predict(d, p, m)
			require.NoError(t, err)
			assert.InDelta(t, 1.0, out.Sum(), 1e-9)
			assert.GreaterOrEqual(t, out.Win, 0.0)
			assert.LessOrEqual(t, out.Win, 1.0)
		}
	}
}

func TestPredict_HigherRatedSideIsFavored(t *testing.T) {
	m, err := prediction.NewLogisticModel(prediction.Artifact{
		Classes:   []string{"BlackWin", "Tie", "WhiteWin"},
		Coef:      [][]float64{{-0.006}, {0}, {0.006}},
		Intercept: []float64{0, -2, 0},
	})
	require.NoError(t, err)

	for _, p := range models.Perspectives {
		out, err := prediction.Predict(400, p, m)
		require.NoError(t, err)
		assert.Greater(t, out.Win, out.Lose, "perspective %s", p)
	}
}

func TestPredict_ClassifierErrorIsSurfaced(t *testing.T) {
	boom := errors.New("model exploded")
	c := new(mocks.MockClassifier)
	c.On("PredictProba", [][]float64{{-50}}).Return(nil, boom)

	_, err := prediction.Predict(50, models.Black, c)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestPredict_UnexpectedShape(t *testing.T) {
	c := new(mocks.MockClassifier)
	c.On("PredictProba", [][]float64{{0}}).Return([][]float64{{0.5, 0.5}}, nil)

	_, err := prediction.Predict(0, models.White, c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1x2")
}

func TestSignedDiff(t *testing.T) {
	assert.Equal(t, 150, prediction.SignedDiff(150, models.White))
	assert.Equal(t, -150, prediction.SignedDiff(150, models.Black))
	assert.Equal(t, 0, prediction.SignedDiff(0, models.Black))
}

func TestValidateRatingDiff(t *testing.T) {
	assert.NoError(t, prediction.ValidateRatingDiff(0))
	assert.NoError(t, prediction.ValidateRatingDiff(-800))
	assert.NoError(t, prediction.ValidateRatingDiff(800))
	assert.Error(t, prediction.ValidateRatingDiff(801))
	assert.Error(t, prediction.ValidateRatingDiff(-1000))
}
