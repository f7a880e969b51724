package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database Metrics
	DBOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_operation_duration_seconds",
			Help:    "Duration of database operations",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation", "collection"},
	)

	// Habit Metrics
	EntriesLoggedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "habit_entries_logged_total",
			Help: "Total number of habit entries logged",
		},
		[]string{"source"}, // manual, routine, quick, import, test
	)

	FreezesConsumedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "habit_freezes_consumed_total",
			Help: "Total number of streak-protection freezes consumed",
		},
	)

	GoalsCompletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "goals_completed_total",
			Help: "Total number of goals marked complete",
		},
	)

	// Error Metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "errors_total",
			Help: "Total number of errors by type",
		},
		[]string{"type", "reason"},
	)
)

// TrackDBOperation times a database operation for the given collection.
func TrackDBOperation(operation, collection string) *prometheus.Timer {
	return prometheus.NewTimer(DBOperationDuration.WithLabelValues(operation, collection))
}

// TrackError counts an error by type and reason.
func TrackError(errorType, reason string) {
	ErrorsTotal.WithLabelValues(errorType, reason).Inc()
}

// TrackEntryLogged counts a logged habit entry by source.
func TrackEntryLogged(source string) {
	EntriesLoggedTotal.WithLabelValues(source).Inc()
}
