package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	sessionsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "http",
			Name:      "sessions_created_total",
			Help:      "Total number of payment sessions successfully created",
		},
	)

	checkoutsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "http",
			Name:      "checkouts_failed_total",
			Help:      "Total number of failed checkout requests by reason",
		},
		[]string{"reason"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		sessionsCreated,
		checkoutsFailed,
	)
}
