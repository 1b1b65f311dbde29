package llm

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	completionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gallopin_llm_completions_total",
			Help: "Completion calls by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	completionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gallopin_llm_completion_duration_seconds",
			Help:    "Completion latency in seconds",
			Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"provider"},
	)
)

func observe(provider string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	completionsTotal.WithLabelValues(provider, outcome).Inc()
	completionDuration.WithLabelValues(provider).Observe(time.Since(start).Seconds())
}
