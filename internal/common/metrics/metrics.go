// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MatchRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_requests_total",
			Help: "Total number of matching requests by outcome",
		},
		[]string{"outcome"},
	)

	MatchRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "match_request_duration_seconds",
			Help: "Duration of matching request processing in seconds",
		},
	)

	MatchCandidatesConsidered = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "match_candidates_considered",
			Help:    "Number of chefs fetched per request before the geofence",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
	)

	MatchCandidatesReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "match_candidates_returned",
			Help:    "Number of chefs returned per request after ranking",
			Buckets: prometheus.LinearBuckets(0, 2, 11),
		},
	)

	AuditWritesFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_audit_writes_failed_total",
			Help: "Total number of recommendation audit writes that failed after retry",
		},
	)
)
