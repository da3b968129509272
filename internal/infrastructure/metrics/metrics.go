package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP and reporting metrics exposed on /metrics.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eduhub_http_requests_total",
			Help: "Total HTTP requests by method, path, and status.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "eduhub_http_request_duration_seconds",
			Help:    "HTTP request latency by method and path.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	ReportQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eduhub_report_queries_total",
			Help: "Aggregation pipeline executions by report name.",
		},
		[]string{"report"},
	)

	ReportCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eduhub_report_cache_hits_total",
			Help: "Report cache hits and misses.",
		},
		[]string{"report", "result"},
	)
)
