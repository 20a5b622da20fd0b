package http

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics carries the per-handler Prometheus instruments. Each handler owns
// its registry so that tests can build multiple handlers without duplicate
// registration panics.
type metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "verdict_requests_total",
				Help: "Total number of compile requests",
			},
			[]string{"endpoint"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "verdict_request_duration_seconds",
				Help: "Duration of compile requests",
			},
			[]string{"endpoint"},
		),
	}
	m.registry.MustRegister(m.requests, m.duration)
	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// instrument wraps a handler with request counting and timing.
func (m *metrics) instrument(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		m.requests.WithLabelValues(endpoint).Inc()
		next(w, r)
		m.duration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}
}
