package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	OutcomeSent       = "sent"
	OutcomeSkipped    = "skipped"
	OutcomeFailed     = "failed"
	OutcomeCreated    = "created"
	OutcomeNotEnabled = "not_configured"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pilotroom_http_requests_total",
			Help: "HTTP requests by method, route pattern and status code",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pilotroom_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route pattern",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	Submissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pilotroom_submissions_total",
			Help: "Pilot submissions by notification outcome",
		},
		[]string{"outcome"},
	)

	CheckoutSessions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pilotroom_checkout_sessions_total",
			Help: "Checkout session attempts by outcome",
		},
		[]string{"outcome"},
	)

	BrowseResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pilotroom_browse_results",
			Help:    "Number of listings visible after filtering",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50},
		},
	)
)
