package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus counters, exposed by the HTTP server at /metrics.
var (
	decisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "alphabet_decisions_total",
		Help: "Recommendations served, by chosen action.",
	}, []string{"action"})

	feedbackTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "alphabet_feedback_total",
		Help: "Feedback updates applied to the value table.",
	})

	storeFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "alphabet_store_failures_total",
		Help: "Value table loads or saves that failed.",
	})

	invalidInputTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "alphabet_invalid_input_total",
		Help: "Requests rejected for malformed input.",
	})
)
