package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resolution outcomes recorded on TransitionsResolved
const (
	OutcomeConfirmed = "confirmed"
	OutcomeCancelled = "cancelled"
	OutcomeBlocked   = "blocked"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	TransitionsRequested prometheus.Counter
	TransitionsResolved  *prometheus.CounterVec
	ShipmentUpdates      prometheus.Counter
	CustomerQueries      prometheus.Counter
	RequestDuration      *prometheus.HistogramVec
	ErrorsCount          *prometheus.CounterVec
}

// NewMetrics creates the dispatch metrics on reg. Pass prometheus.DefaultRegisterer
// in production and a fresh registry in tests.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		TransitionsRequested: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transitions_requested_total",
			Help:      "The total number of pending status transitions created from board drags",
		}),
		TransitionsResolved: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transitions_resolved_total",
			Help:      "The total number of transition resolutions by outcome",
		}, []string{"outcome"}),
		ShipmentUpdates: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shipment_updates_total",
			Help:      "The total number of direct shipment updates from the detail view",
		}),
		CustomerQueries: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "customer_queries_total",
			Help:      "The total number of customer aggregation queries",
		}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Time taken to serve API requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		ErrorsCount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
