package notify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pollsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "notifier",
		Subsystem: "poller",
		Name:      "polls_total",
		Help:      "Total number of poll attempts.",
	})

	pollFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "notifier",
		Subsystem: "poller",
		Name:      "poll_failures_total",
		Help:      "Total number of failed poll attempts.",
	})

	pendingSales = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "notifier",
		Subsystem: "poller",
		Name:      "pending_sales",
		Help:      "Pending sales observed by the last successful poll.",
	})
)
