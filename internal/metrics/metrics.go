// filepath: internal/metrics/metrics.go
// Package metrics exposes deletion counters in the Prometheus format.
package metrics

import (
	"net/http"
	"strconv"

	"mediabridge/internal/deletion"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mediabridge"

// Metrics holds the collectors of one registry.
type Metrics struct {
	registry *prometheus.Registry

	deleteCalls *prometheus.CounterVec
	attempts    *prometheus.CounterVec
	rejected    *prometheus.CounterVec
	panics      prometheus.Counter
}

// New creates the collectors on a fresh registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		deleteCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "delete_calls_total",
			Help:      "deleteFile calls that reached the coordinator, by outcome.",
		}, []string{"deleted"}),
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "strategy_attempts_total",
			Help:      "Deletion strategy runs, by strategy and result.",
		}, []string{"strategy", "result"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_calls_total",
			Help:      "deleteFile calls rejected before the coordinator ran.",
		}, []string{"reason"}),
		panics: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "coordinator_panics_total",
			Help:      "Panics recovered by the deletion coordinator.",
		}),
	}

	m.registry.MustRegister(
		m.deleteCalls,
		m.attempts,
		m.rejected,
		m.panics,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveDeletion records one coordinator run.
func (m *Metrics) ObserveDeletion(report deletion.Report) {
	m.deleteCalls.WithLabelValues(strconv.FormatBool(report.Deleted)).Inc()
	for _, a := range report.Attempts {
		m.attempts.WithLabelValues(a.Strategy, a.Result.String()).Inc()
	}
	if report.Panic != nil {
		m.panics.Inc()
	}
}

// ObserveRejected records a call refused at the boundary.
func (m *Metrics) ObserveRejected(reason string) {
	m.rejected.WithLabelValues(reason).Inc()
}

// Handler serves the registry for scraping.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
