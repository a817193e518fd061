package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	checkoutsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "checkouts_processed_total",
			Help:      "Total number of successfully processed checkout events",
		},
	)

	checkoutsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "checkouts_failed_total",
			Help:      "Total number of failed checkout event handling attempts",
		},
	)

	checkoutsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "checkouts_dlq_total",
			Help:      "Total number of checkout events written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	checkoutProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "checkout_processing_duration_seconds",
			Help:      "Histogram of checkout event processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	checkoutsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "order_service",
			Subsystem: "kafka_consumer",
			Name:      "checkouts_in_progress",
			Help:      "Number of checkout events currently being processed",
		},
	)

	ordersSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "http",
			Name:      "orders_submitted_total",
			Help:      "Total number of orders accepted over HTTP",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		checkoutsProcessed,
		checkoutsFailed,
		checkoutsDLQ,
		commitErrors,
		checkoutProcessingDuration,
		checkoutsInProgress,

		ordersSubmitted,
	)
}
