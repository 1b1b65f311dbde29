package review

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var outcomes = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "gallopin_review_requests_total",
		Help: "Review generation requests by outcome",
	},
	[]string{"outcome"},
)
