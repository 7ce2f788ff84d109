package services_test

import (
	"context"
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vytor/chessdash/internal/eco"
	"github.com/vytor/chessdash/internal/errors"
	"github.com/vytor/chessdash/internal/models"
	"github.com/vytor/chessdash/internal/services"
	"github.com/vytor/chessdash/internal/testutil"
	"github.com/vytor/chessdash/internal/testutil/mocks"
)

type stubHeatmaps map[string][]models.Image

func (s stubHeatmaps) OpeningHeatmaps(name string, p models.Perspective) []models.Image {
	if images, ok := s[name+"/"+p.String()]; ok {
		return images
	}
	return []models.Image{}
}

func TestOpeningService_Rank(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockOpeningRepository)
	repo.On("List", ctx, models.OpeningFilter{}).Return(testutil.SampleOpenings(), nil)

	svc := services.NewOpeningService(repo, nil, nil, nil)
	ranked, err := svc.Rank(ctx, models.Weights{Effectiveness: 1}, models.White, "")
	require.NoError(t, err)

	require.Len(t, ranked, 5)
	assert.Equal(t, "Ruy Lopez", ranked[0].Name)
	assert.InDelta(t, 0.65, ranked[0].Score, 1e-9)
	assert.Equal(t, "Sicilian Defense", ranked[4].Name)
	repo.AssertExpectations(t)
}

func TestOpeningService_RankZeroWeightsAlphabetical(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockOpeningRepository)
	repo.On("List", ctx, models.OpeningFilter{NameContains: "e"}).Return(testutil.SampleOpenings(), nil)

	svc := services.NewOpeningService(repo, nil, nil, nil)
	ranked, err := svc.Rank(ctx, models.Weights{}, models.Black, "e")
	require.NoError(t, err)

	require.Len(t, ranked, 5)
	assert.Equal(t, "French Defense: Winawer Variation", ranked[0].Name)
	assert.Equal(t, "Sicilian Defense", ranked[4].Name)
}

func TestOpeningService_RankInvalidWeights(t *testing.T) {
	repo := new(mocks.MockOpeningRepository)
	svc := services.NewOpeningService(repo, nil, nil, nil)

	_, err := svc.Rank(context.Background(), models.Weights{Volatility: 7}, models.White, "")
	require.Error(t, err)

	appErr, ok := errors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestOpeningService_RankRepositoryError(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockOpeningRepository)
	repo.On("List", ctx, mock.Anything).Return(nil, stderrors.New("disk gone"))

	svc := services.NewOpeningService(repo, nil, nil, nil)
	_, err := svc.Rank(ctx, models.Weights{Popularity: 1}, models.White, "")

	appErr, ok := errors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeInternal, appErr.Code)
}

func TestOpeningService_RankEmptyCatalog(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockOpeningRepository)
	repo.On("List", ctx, mock.Anything).Return([]models.OpeningRecord{}, nil)

	svc := services.NewOpeningService(repo, nil, nil, nil)
	ranked, err := svc.Rank(ctx, models.Weights{Popularity: 1}, models.White, "")
	require.NoError(t, err)
	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)
}

func TestOpeningService_Detail(t *testing.T) {
	ctx := context.Background()
	name := "French Defense: Winawer Variation"
	record := testutil.SampleOpenings()[3]

	repo := new(mocks.MockOpeningRepository)
	repo.On("Get", ctx, name).Return(&record, nil)

	book := eco.NewBookFromEntries([]eco.Entry{{Code: "C15", Title: "French Defense: Winawer Variation", Moves: "1. e4 e6 2. d4 d5 3. Nc3 Bb4"}})
	heatmaps := stubHeatmaps{name + "/Black": {{URL: "/assets/x.png", Caption: "Knight Black heatmap"}}}

	svc := services.NewOpeningService(repo, book, heatmaps, nil)
	detail, err := svc.Detail(ctx, name, models.Black)
	require.NoError(t, err)

	assert.Equal(t, record, detail.Opening)
	assert.Equal(t, "C15", detail.ECOCode)
	assert.Equal(t, "https://lichess.org/opening/French_Defense:_Winawer_Variation", detail.LichessURL)
	require.Len(t, detail.Heatmaps, 1)
	assert.Equal(t, "Knight Black heatmap", detail.Heatmaps[0].Caption)
}

func TestOpeningService_DetailNotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockOpeningRepository)
	repo.On("Get", ctx, "Nope").Return(nil, nil)

	svc := services.NewOpeningService(repo, nil, stubHeatmaps{}, nil)
	_, err := svc.Detail(ctx, "Nope", models.White)

	appErr, ok := errors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeNotFound, appErr.Code)
}

func TestOpeningService_DetailEmptyName(t *testing.T) {
	svc := services.NewOpeningService(new(mocks.MockOpeningRepository), nil, nil, nil)
	_, err := svc.Detail(context.Background(), "", models.White)

	appErr, ok := errors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeValidation, appErr.Code)
}

func TestOpeningService_Count(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockOpeningRepository)
	repo.On("Count", ctx).Return(5, nil).Once()
	repo.On("Count", ctx).Return(0, stderrors.New("closed")).Once()

	svc := services.NewOpeningService(repo, nil, nil, nil)
	n, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	_, err = svc.Count(ctx)
	appErr, ok := errors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeInternal, appErr.Code)
}
