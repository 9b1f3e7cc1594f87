package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all application metrics
type Metrics struct {
	// Key-value store metrics
	StoreOperations *prometheus.CounterVec
	StoreLatency    *prometheus.HistogramVec

	// Ledger metrics
	LedgerMutations *prometheus.CounterVec

	// Session metrics
	LoginAttempts *prometheus.CounterVec
}

// NewMetrics creates and registers all application metrics
func NewMetrics(namespace, subsystem string) *Metrics {
	return &Metrics{
		StoreOperations: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "store_operations_total",
			Help:      "Total number of key-value store operations",
		}, []string{"operation", "status"}),
		StoreLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "store_operation_duration_seconds",
			Help:      "Duration of key-value store operations",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5},
		}, []string{"operation"}),
		LedgerMutations: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "ledger_mutations_total",
			Help:      "Total number of ledger mutations",
		}, []string{"ledger", "action"}),
		LoginAttempts: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "login_attempts_total",
			Help:      "Total number of login attempts",
		}, []string{"outcome"}),
	}
}

// New creates metrics without registering them, for use in tests.
func New(namespace string) *Metrics {
	return &Metrics{
		StoreOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_operations_total",
			Help:      "Total number of key-value store operations",
		}, []string{"operation", "status"}),
		StoreLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "store_operation_duration_seconds",
			Help:      "Duration of key-value store operations",
		}, []string{"operation"}),
		LedgerMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_mutations_total",
			Help:      "Total number of ledger mutations",
		}, []string{"ledger", "action"}),
		LoginAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_attempts_total",
			Help:      "Total number of login attempts",
		}, []string{"outcome"}),
	}
}
