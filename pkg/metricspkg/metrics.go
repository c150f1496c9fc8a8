// Package metricspkg provides prometheus collectors for engine operations.
package metricspkg

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for recorded operations.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Collector counts engine operations by operation and outcome.
type Collector struct {
	transactions *prometheus.CounterVec
	latency      *prometheus.HistogramVec
}

// New creates a Collector under the given namespace.
func New(namespace string) *Collector {
	return &Collector{
		transactions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transactions_total",
				Help:      "Total number of engine operations per operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "transaction_duration_seconds",
				Help:      "Engine operation latency per operation",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// Register registers all collectors with the given registerer.
func (c *Collector) Register(reg prometheus.Registerer) error {
	for _, col := range []prometheus.Collector{c.transactions, c.latency} {
		if err := reg.Register(col); err != nil {
			return err
		}
	}

	return nil
}

// Record counts one operation with the given outcome.
func (c *Collector) Record(operation, outcome string, elapsed time.Duration) {
	c.transactions.WithLabelValues(operation, outcome).Inc()
	c.latency.WithLabelValues(operation).Observe(elapsed.Seconds())
}
