// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Ballot outcomes
const (
	OutcomeAccepted          = "accepted"
	OutcomeInvalid           = "invalid"
	OutcomeForbidden         = "forbidden"
	OutcomeUserNotFound      = "user_not_found"
	OutcomeAlreadyVoted      = "already_voted"
	OutcomeCandidateNotFound = "candidate_not_found"
	OutcomeFailed            = "failed"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "quickvote",
		Name:      "http_requests_total",
		Help:      "HTTP requests by route and status.",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "quickvote",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	ballots = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "quickvote",
		Name:      "ballots_total",
		Help:      "Ballots received by outcome.",
	}, []string{"outcome"})

	resets = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "quickvote",
		Name:      "election_resets_total",
		Help:      "Completed election resets.",
	})
)

// ObserveRequest records one served request
func ObserveRequest(method, route string, status int, d time.Duration) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// RecordBallot counts a ballot under one of the Outcome constants
func RecordBallot(outcome string) {
	ballots.WithLabelValues(outcome).Inc()
}

// RecordReset counts a completed election reset
func RecordReset() {
	resets.Inc()
}

// Handler serves the default registry in the Prometheus text format
func Handler() http.Handler {
	return promhttp.Handler()
}
