package usecase

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Metrics holds Prometheus metrics for the analysis engine.
type Metrics struct {
	CacheHitsTotal       prometheus.Counter
	CacheMissesTotal     prometheus.Counter
	CacheEntries         prometheus.Gauge
	PrimaryFailuresTotal *prometheus.CounterVec
	FallbackTotal        *prometheus.CounterVec
	AnalyzeDuration      *prometheus.HistogramVec
}

// NewMetrics registers the engine metrics once per process.
//
// Metrics:
//   - analysis_cache_hits_total
//   - analysis_cache_misses_total
//   - analysis_cache_entries
//   - analysis_primary_failures_total{reason}
//   - analysis_fallback_total{cause}
//   - analysis_duration_seconds{outcome}
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			CacheHitsTotal: promauto.NewCounter(prometheus.CounterOpts{
				Name: "analysis_cache_hits_total",
				Help: "Total number of analysis cache hits",
			}),
			CacheMissesTotal: promauto.NewCounter(prometheus.CounterOpts{
				Name: "analysis_cache_misses_total",
				Help: "Total number of analysis cache misses",
			}),
			CacheEntries: promauto.NewGauge(prometheus.GaugeOpts{
				Name: "analysis_cache_entries",
				Help: "Current number of cached analysis results",
			}),
			PrimaryFailuresTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "analysis_primary_failures_total",
					Help: "Total number of failed primary analyzer calls",
				},
				[]string{"reason"}, // "service", "unavailable", "validation", "timeout", "panic", "unknown"
			),
			FallbackTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "analysis_fallback_total",
					Help: "Total number of results produced by the rule-based analyzer",
				},
				[]string{"cause"}, // "primary_failed", "blank_message", "no_primary"
			),
			AnalyzeDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "analysis_duration_seconds",
					Help:    "Duration of AnalyzeMessage calls in seconds",
					Buckets: prometheus.ExponentialBuckets(0.001, 2, 15), // 1ms to ~16s
				},
				[]string{"outcome"}, // "hit", "miss", "canceled"
			),
		}
	})

	return globalMetrics
}

func (m *Metrics) recordHit()  { m.CacheHitsTotal.Inc() }
func (m *Metrics) recordMiss() { m.CacheMissesTotal.Inc() }

func (m *Metrics) recordPrimaryFailure(reason string) {
	m.PrimaryFailuresTotal.WithLabelValues(reason).Inc()
}

func (m *Metrics) recordFallback(cause string) {
	m.FallbackTotal.WithLabelValues(cause).Inc()
}

func (m *Metrics) setCacheEntries(n int) {
	m.CacheEntries.Set(float64(n))
}

func (m *Metrics) observe(outcome string, start time.Time) {
	m.AnalyzeDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
}
