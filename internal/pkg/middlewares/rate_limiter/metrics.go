package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RateLimitExceededTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limit_exceeded_total",
			Help: "Total number of requests rejected due to rate limiting",
		},
		[]string{"method", "route"},
	)

	// RateLimitCapacity настроенный MIDDLEWARE_RATE_LIMIT_QPS, для сравнения с фактическим RPS.
	RateLimitCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "rate_limit_capacity",
			Help: "Configured token bucket capacity (requests per second)",
		},
	)
)
