// Package metrics defines the Prometheus collectors of the service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "resume_matcher"

// Outcome label values of AnalysesTotal.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeInvalid = "invalid"
)

// Result label values of CacheLookups.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// Metrics holds the collectors registered on one registry.
type Metrics struct {
	Registry *prometheus.Registry

	AnalysesTotal    *prometheus.CounterVec
	AnalysisDuration *prometheus.HistogramVec
	OverallScore     prometheus.Histogram
	CacheLookups     *prometheus.CounterVec
	RateLimited      prometheus.Counter
	InFlight         *prometheus.GaugeVec
}

// New registers all collectors on a fresh registry, plus the Go and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		AnalysesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "analyses_total",
				Help:      "Total number of analyses by source and outcome",
			},
			[]string{"source", "outcome"},
		),
		AnalysisDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "analysis_duration_seconds",
				Help:      "Duration of one analysis in seconds",
				Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"source"},
		),
		OverallScore: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "analysis_overall_score",
				Help:      "Distribution of overall match scores",
				Buckets:   prometheus.LinearBuckets(10, 10, 10),
			},
		),
		CacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_lookups_total",
				Help:      "Result cache lookups by result",
			},
			[]string{"result"},
		),
		RateLimited: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_limited_total",
				Help:      "Requests rejected by the rate limiter",
			},
		),
		InFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "analyses_in_flight",
				Help:      "Analyses currently running",
			},
			[]string{"source"},
		),
	}
}

// ObserveAnalysis records one finished analysis. score is ignored unless outcome is OutcomeSuccess.
func (m *Metrics) ObserveAnalysis(source, outcome string, elapsed time.Duration, score int) {
	if m == nil {
		return
	}
	m.AnalysesTotal.WithLabelValues(source, outcome).Inc()
	m.AnalysisDuration.WithLabelValues(source).Observe(elapsed.Seconds())
	if outcome == OutcomeSuccess {
		m.OverallScore.Observe(float64(score))
	}
}

// ObserveCache records one cache lookup.
func (m *Metrics) ObserveCache(result string) {
	if m == nil {
		return
	}
	m.CacheLookups.WithLabelValues(result).Inc()
}

// ObserveRateLimited counts one rejected request.
func (m *Metrics) ObserveRateLimited() {
	if m == nil {
		return
	}
	m.RateLimited.Inc()
}

// Track increments the in-flight gauge and returns a function that decrements it.
func (m *Metrics) Track(source string) func() {
	if m == nil {
		return func() {}
	}
	g := m.InFlight.WithLabelValues(source)
	g.Inc()
	return g.Dec
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
