package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/chessdash/internal/metrics"
)

func TestCollectorsExported(t *testing.T) {
	m := metrics.New()
	m.ObserveRequest(http.MethodGet, "/api/openings/rank", http.StatusOK, 15*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "", http.StatusNotFound, time.Millisecond)
	m.RankingComputed("White", "score")
	m.RankingComputed("Black", "alphabetical")
	m.PredictionServed("Black")
	m.SetOpeningsLoaded(42)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	text := string(body)

	assert.Contains(t, text, `chessdash_http_requests_total{method="GET",route="/api/openings/rank",status="200"} 1`)
	assert.Contains(t, text, `chessdash_http_requests_total{method="GET",route="unmatched",status="404"} 1`)
	assert.Contains(t, text, `chessdash_http_request_duration_seconds_count{route="/api/openings/rank"} 1`)
	assert.Contains(t, text, `chessdash_rankings_total{mode="alphabetical",perspective="Black"} 1`)
	assert.Contains(t, text, `chessdash_predictions_total{perspective="Black"} 1`)
	assert.Contains(t, text, `chessdash_openings_loaded 42`)
}

func TestCounters(t *testing.T) {
	m := metrics.New()
	m.RankingComputed("White", "score")
	m.RankingComputed("White", "score")

	n, err := testutil.GatherAndCount(m.Gatherer(), "chessdash_rankings_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNilMetrics(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest(http.MethodGet, "/", http.StatusOK, time.Second)
		m.RankingComputed("White", "score")
		m.PredictionServed("White")
		m.SetOpeningsLoaded(1)
	})
}
