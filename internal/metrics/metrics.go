// Package metrics exposes Prometheus collectors for the logo service.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	resolvesTotal        *prometheus.CounterVec
	fetchAttemptsTotal   *prometheus.CounterVec
	fetchDurationSeconds *prometheus.HistogramVec
	bulkItemsTotal       *prometheus.CounterVec

	once sync.Once
)

// Init initializes the Prometheus collectors. It is safe to call
// multiple times; the observe helpers call it lazily.
func Init() {
	once.Do(func() {
		resolvesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "logofetch_resolves_total",
				Help: "Total name resolutions, labeled by confidence tier.",
			},
			[]string{"confidence"},
		)

		fetchAttemptsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "logofetch_fetch_attempts_total",
				Help: "Total per-source fetch attempts, labeled by source and outcome.",
			},
			[]string{"source", "outcome"},
		)

		fetchDurationSeconds = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "logofetch_fetch_duration_seconds",
				Help:    "Histogram of per-source fetch latencies.",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
			[]string{"source"},
		)

		bulkItemsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "logofetch_bulk_items_total",
				Help: "Total bulk items processed, labeled by outcome.",
			},
			[]string{"outcome"},
		)
	})
}

// ObserveResolve counts one resolution by confidence tier.
func ObserveResolve(confidence string) {
	Init()
	resolvesTotal.WithLabelValues(confidence).Inc()
}

// ObserveFetchAttempt counts one source attempt and records its latency.
func ObserveFetchAttempt(source string, success bool, duration time.Duration) {
	Init()
	fetchAttemptsTotal.WithLabelValues(source, outcome(success)).Inc()
	fetchDurationSeconds.WithLabelValues(source).Observe(duration.Seconds())
}

// ObserveBulkItem counts one completed bulk item.
func ObserveBulkItem(success bool) {
	Init()
	bulkItemsTotal.WithLabelValues(outcome(success)).Inc()
}

func outcome(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
