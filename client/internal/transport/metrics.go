package transport

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK           = "ok"
	outcomeHTTPError    = "http_error"
	outcomeBackendError = "backend_error"
	outcomeNetworkError = "network_error"
	outcomeDecodeError  = "decode_error"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "quantdinger_client",
			Name:      "requests_total",
			Help:      "Requests sent to the user-management API by outcome.",
		},
		[]string{"method", "path", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "quantdinger_client",
			Name:      "request_duration_seconds",
			Help:      "Round-trip latency of user-management API requests.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)
