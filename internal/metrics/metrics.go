package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)
)

// Business Metrics
var (
	StacksBuilt = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stacks_built_total",
			Help: "Total number of item stacks built",
		},
		[]string{"material"},
	)

	UnknownNameLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "unknown_name_lookups_total",
			Help: "Total number of failed registry name resolutions",
		},
		[]string{"kind"},
	)
)
