package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	paymentsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "agro_market",
			Subsystem: "payments_consumer",
			Name:      "processed_total",
			Help:      "Total number of applied payment notifications",
		},
	)

	paymentsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "agro_market",
			Subsystem: "payments_consumer",
			Name:      "failed_total",
			Help:      "Total number of payment notifications that could not be applied",
		},
	)

	paymentsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "agro_market",
			Subsystem: "payments_consumer",
			Name:      "dlq_total",
			Help:      "Total number of payment notifications written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "agro_market",
			Subsystem: "payments_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	paymentProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "agro_market",
			Subsystem: "payments_consumer",
			Name:      "processing_duration_seconds",
			Help:      "Histogram of payment notification processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	paymentsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "agro_market",
			Subsystem: "payments_consumer",
			Name:      "in_progress",
			Help:      "Number of payment notifications currently being processed",
		},
	)
)

func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(
		paymentsProcessed,
		paymentsFailed,
		paymentsDLQ,
		commitErrors,
		paymentProcessingDuration,
		paymentsInProgress,
	)
}
