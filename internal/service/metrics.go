package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "agro_market",
		Subsystem: "orders",
		Name:      "created_total",
		Help:      "Total number of orders placed.",
	})

	stockRejections = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "agro_market",
		Subsystem: "orders",
		Name:      "stock_rejections_total",
		Help:      "Checkouts rejected because a product ran out of stock.",
	})

	txConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "agro_market",
		Subsystem: "orders",
		Name:      "tx_conflicts_total",
		Help:      "Checkout transactions aborted by lock conflicts or timeouts.",
	})

	cancellations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "agro_market",
		Subsystem: "orders",
		Name:      "cancellations_total",
		Help:      "Cancelled orders by the role that cancelled them.",
	}, []string{"role"})

	statusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "agro_market",
		Subsystem: "orders",
		Name:      "status_transitions_total",
		Help:      "Order status transitions.",
	}, []string{"from", "to"})

	paymentUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "agro_market",
		Subsystem: "orders",
		Name:      "payment_updates_total",
		Help:      "Payment status changes by new status.",
	}, []string{"status"})

	publishFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "agro_market",
		Subsystem: "events",
		Name:      "publish_failures_total",
		Help:      "Domain events that could not be published.",
	}, []string{"event_type"})

	checkoutDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "agro_market",
		Subsystem: "orders",
		Name:      "checkout_duration_seconds",
		Help:      "Time spent placing an order, retries included.",
		Buckets:   prometheus.DefBuckets,
	})
)
