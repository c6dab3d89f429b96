package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPRequestsTotal counts handled requests by route, method and status code.
var HTTPRequestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "item_api_http_requests_total",
		Help: "Total number of HTTP requests handled",
	},
	[]string{"path", "method", "status"},
)

// HTTPRequestDuration records handler latency by route and method.
var HTTPRequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "item_api_http_request_duration_seconds",
		Help:    "Latency in seconds of HTTP requests",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"path", "method"},
)

// ValidationFailures counts rejected payloads by location (body, query, path) and constraint.
var ValidationFailures = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "item_api_validation_failures_total",
		Help: "Number of field constraint violations reported to clients",
	},
	[]string{"location", "constraint"},
)

// TokensIssued counts access tokens created, by sign-in provider.
var TokensIssued = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "item_api_access_tokens_issued_total",
		Help: "Number of access tokens issued",
	},
	[]string{"provider"},
)

// AuthFailures counts rejected credentials by reason.
var AuthFailures = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "item_api_auth_failures_total",
		Help: "Number of rejected authentication attempts",
	},
	[]string{"reason"},
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal, HTTPRequestDuration)
	prometheus.MustRegister(ValidationFailures, TokensIssued, AuthFailures)
}
