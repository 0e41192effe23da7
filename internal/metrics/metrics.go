package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voting_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "voting_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Domain metrics
	VoteOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voting_vote_operations_total",
			Help: "Total number of vote mutations by operation",
		},
		[]string{"operation"},
	)

	EventsCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "voting_events_created_total",
			Help: "Total number of events created",
		},
	)

	EventsDeletedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "voting_events_deleted_total",
			Help: "Total number of events deleted",
		},
	)
)

// Vote operation labels
const (
	OperationCreate    = "create"
	OperationIncrement = "increment"
	OperationDecrement = "decrement"
	OperationReset     = "reset"
	OperationDelete    = "delete"
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		VoteOperationsTotal,
		EventsCreatedTotal,
		EventsDeletedTotal,
	)
}

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}
