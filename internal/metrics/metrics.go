// Package metrics exposes Prometheus collectors for the entry and prediction flow.
//
// Usage:
//
//	metrics.RecordPrediction("remote", "timeout", 5*time.Second)
//	metrics.RecordEntryCreated(metrics.EntryWithoutPrediction)
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const OutcomeSuccess = "success"

const (
	EntryWithPrediction    = "with_prediction"
	EntryWithoutPrediction = "without_prediction"
	EntryStorageError      = "storage_error"
)

var (
	// PredictionRequestsTotal counts provider calls by provider and outcome
	// (success or one of the provider failure kinds).
	PredictionRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stresscast_prediction_requests_total",
			Help: "Total number of prediction provider calls",
		},
		[]string{"provider", "outcome"},
	)

	PredictionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stresscast_prediction_duration_seconds",
			Help:    "Duration of prediction provider calls in seconds",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"provider"},
	)

	EntriesCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stresscast_entries_created_total",
			Help: "Entry creation attempts by result",
		},
		[]string{"result"},
	)
)

func RecordPrediction(provider, outcome string, d time.Duration) {
	PredictionRequestsTotal.WithLabelValues(provider, outcome).Inc()
	PredictionDuration.WithLabelValues(provider).Observe(d.Seconds())
}

func RecordEntryCreated(result string) {
	EntriesCreatedTotal.WithLabelValues(result).Inc()
}
