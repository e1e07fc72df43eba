// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PageRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_page_requests_total",
			Help: "Total number of page requests handled by the gateway",
		},
		[]string{"page"},
	)

	PageRequestsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_page_requests_failed_total",
			Help: "Total number of page requests that ended in an error payload",
		},
		[]string{"page", "error_code"},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "gateway_upstream_request_duration_seconds",
			Help: "Duration of calls to the job portal API in seconds",
		},
		[]string{"endpoint"},
	)

	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gateway_sessions_active",
			Help: "Number of live browser sessions",
		},
	)
)
