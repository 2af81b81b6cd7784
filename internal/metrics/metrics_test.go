package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveAnalysis(t *testing.T) {
	m := New()

	m.ObserveAnalysis("http", OutcomeSuccess, 3*time.Millisecond, 85)
	m.ObserveAnalysis("http", OutcomeSuccess, 2*time.Millisecond, 40)
	m.ObserveAnalysis("worker", OutcomeFailure, time.Millisecond, 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.AnalysesTotal.WithLabelValues("http", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AnalysesTotal.WithLabelValues("worker", OutcomeFailure)))
	assert.Equal(t, 2, testutil.CollectAndCount(m.AnalysisDuration))
	assert.Equal(t, 1, testutil.CollectAndCount(m.OverallScore))
}

func TestObserveCache(t *testing.T) {
	m := New()
	m.ObserveCache(CacheHit)
	m.ObserveCache(CacheMiss)
	m.ObserveCache(CacheMiss)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues(CacheHit)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues(CacheMiss)))
}

func TestTrack(t *testing.T) {
	m := New()
	done := m.Track("http")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.InFlight.WithLabelValues("http")))
	done()
	assert.Equal(t, 0.0, testutil.ToFloat64(m.InFlight.WithLabelValues("http")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveAnalysis("cli", OutcomeSuccess, time.Millisecond, 50)
		m.ObserveCache(CacheHit)
		m.ObserveRateLimited()
		m.Track("cli")()
	})
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveRateLimited()
	m.ObserveAnalysis("http", OutcomeSuccess, time.Millisecond, 90)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "resume_matcher_rate_limited_total 1")
	assert.Contains(t, string(body), `resume_matcher_analyses_total{outcome="success",source="http"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestNew_IsolatedRegistries(t *testing.T) {
	a := New()
	b := New()
	a.RateLimited.Inc()
	assert.Equal(t, 0.0, testutil.ToFloat64(b.RateLimited))
}
