package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the GDACS client.
type Metrics struct {
	APIRequests     *prometheus.CounterVec   // labels: operation, outcome={success,empty,error,not_found}
	CacheLookups    *prometheus.CounterVec   // labels: operation, result={hit,miss}
	RequestDuration *prometheus.HistogramVec // labels: operation
}

func newMetrics() *Metrics {
	return &Metrics{
		APIRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gdacs_client",
			Name:      "api_requests_total",
			Help:      "GDACS API requests by operation and outcome.",
		}, []string{"operation", "outcome"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gdacs_client",
			Name:      "cache_lookups_total",
			Help:      "Memoization cache lookups by operation and result.",
		}, []string{"operation", "result"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gdacs_client",
			Name:      "request_duration_seconds",
			Help:      "GDACS API request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"operation"}),
	}
}

// NewMetrics creates the client metrics and registers them with the default
// Prometheus registry. Embedding applications expose them with their own
// promhttp handler.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(m.APIRequests, m.CacheLookups, m.RequestDuration)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}
