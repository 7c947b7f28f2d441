// Package metrics owns the Prometheus collectors exposed on /metrics.
package metrics

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "marketplace"

// Outcome labels
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Metrics groups the service collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests     *prometheus.CounterVec
	HTTPDuration     *prometheus.HistogramVec
	ProcessorCalls   *prometheus.CounterVec
	ProcessorLatency *prometheus.HistogramVec
	EventsPublished  *prometheus.CounterVec
}

// New registers every collector along with the Go runtime and process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		ProcessorCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "payment_processor",
			Name:      "calls_total",
			Help:      "Payment processor API calls by operation and outcome.",
		}, []string{"operation", "outcome"}),
		ProcessorLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "payment_processor",
			Name:      "call_duration_seconds",
			Help:      "Payment processor API latency by operation.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"operation"}),
		EventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "events",
			Name:      "published_total",
			Help:      "Card lifecycle events by type and outcome.",
		}, []string{"type", "outcome"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequests,
		m.HTTPDuration,
		m.ProcessorCalls,
		m.ProcessorLatency,
		m.EventsPublished,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RegisterDBStats exposes the connection pool statistics of db.
func (m *Metrics) RegisterDBStats(db *sql.DB, dbName string) {
	if m == nil || db == nil {
		return
	}

	m.registry.MustRegister(collectors.NewDBStatsCollector(db, dbName))
}

// ObserveProcessorCall records one processor call.
func (m *Metrics) ObserveProcessorCall(operation string, started time.Time, err error) {
	if m == nil {
		return
	}

	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}

	m.ProcessorCalls.WithLabelValues(operation, outcome).Inc()
	m.ProcessorLatency.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

// ObserveEvent records one publish attempt.
func (m *Metrics) ObserveEvent(eventType string, err error) {
	if m == nil {
		return
	}

	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}

	m.EventsPublished.WithLabelValues(eventType, outcome).Inc()
}
