package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	checkoutsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "atelier_shop",
			Subsystem: "orders",
			Name:      "checkouts_total",
			Help:      "Total number of checkout attempts by result",
		},
		[]string{"result"},
	)

	checkoutDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "atelier_shop",
			Subsystem: "orders",
			Name:      "checkout_duration_seconds",
			Help:      "Histogram of checkout durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	cancellationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "atelier_shop",
			Subsystem: "orders",
			Name:      "cancellations_total",
			Help:      "Total number of cancelled orders",
		},
	)

	refundsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "atelier_shop",
			Subsystem: "orders",
			Name:      "refunds_total",
			Help:      "Total number of refunded orders",
		},
	)

	stockConflictsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "atelier_shop",
			Subsystem: "inventory",
			Name:      "stock_conflicts_total",
			Help:      "Total number of checkouts rejected for insufficient stock",
		},
	)
)

const (
	checkoutCreated           = "created"
	checkoutInvalid           = "invalid"
	checkoutPaymentMismatch   = "payment_mismatch"
	checkoutInsufficientStock = "insufficient_stock"
	checkoutError             = "error"
)

func RegisterMetrics() {
	prometheus.MustRegister(
		checkoutsTotal,
		checkoutDuration,
		cancellationsTotal,
		refundsTotal,
		stockConflictsTotal,
	)
}
