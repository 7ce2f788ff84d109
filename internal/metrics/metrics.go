// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "chessdash"

// Metrics is the set of collectors the server updates.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	gatherer prometheus.Gatherer

	requests       *prometheus.CounterVec
	duration       *prometheus.HistogramVec
	rankings       *prometheus.CounterVec
	predictions    *prometheus.CounterVec
	openingsLoaded prometheus.Gauge
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		gatherer: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		rankings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rankings_total",
			Help:      "Opening rankings computed, by perspective and ordering mode.",
		}, []string{"perspective", "mode"}),
		predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predictions_total",
			Help:      "Outcome predictions served, by perspective.",
		}, []string{"perspective"}),
		openingsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "openings_loaded",
			Help:      "Openings in the catalog.",
		}),
	}

	reg.MustRegister(
		m.requests,
		m.duration,
		m.rankings,
		m.predictions,
		m.openingsLoaded,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(route).Observe(elapsed.Seconds())
}

func (m *Metrics) RankingComputed(perspective, mode string) {
	if m == nil {
		return
	}
	m.rankings.WithLabelValues(perspective, mode).Inc()
}

func (m *Metrics) PredictionServed(perspective string) {
	if m == nil {
		return
	}
	m.predictions.WithLabelValues(perspective).Inc()
}

func (m *Metrics) SetOpeningsLoaded(n int) {
	if m == nil {
		return
	}
	m.openingsLoaded.Set(float64(n))
}

// Gatherer returns the underlying registry.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.gatherer
}
