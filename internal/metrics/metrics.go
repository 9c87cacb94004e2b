// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Number of API requests currently being processed",
		},
	)

	// Source Metrics
	SourceFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "source_fetch_total",
			Help: "Total number of recommendation source fetches",
		},
		[]string{"source", "outcome"}, // outcome: success, failure, timeout, canceled
	)

	SourceFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "source_fetch_duration_seconds",
			Help:    "Duration of recommendation source fetches in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2, 3, 5, 10},
		},
		[]string{"source"},
	)

	SourceItemsReturned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "source_items_returned_total",
			Help: "Total number of items contributed by each source",
		},
		[]string{"source"},
	)

	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"outcome"}, // outcome: success, unauthenticated, internal_error
	)

	RecommendationItems = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_items",
			Help:    "Number of items in each assembled recommendation list",
			Buckets: []float64{1, 2, 4, 7, 10},
		},
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "End-to-end recommendation assembly time in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "source_cache_hits_total",
			Help: "Total number of source cache hits",
		},
		[]string{"source"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "source_cache_misses_total",
			Help: "Total number of source cache misses",
		},
		[]string{"source"},
	)

	CacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "source_cache_entries",
			Help: "Current number of entries in the source cache",
		},
	)

	// Outbound rate limiter
	UpstreamThrottleWait = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_throttle_wait_seconds",
			Help:    "Time spent waiting on the outbound rate limiter",
			Buckets: []float64{.001, .01, .05, .1, .5, 1, 2},
		},
		[]string{"provider"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordSourceFetch records how one source settled.
func RecordSourceFetch(source, outcome string, duration time.Duration, items int) {
	SourceFetchTotal.WithLabelValues(source, outcome).Inc()
	SourceFetchDuration.WithLabelValues(source).Observe(duration.Seconds())
	if items > 0 {
		SourceItemsReturned.WithLabelValues(source).Add(float64(items))
	}
}

// RecordRecommendation records one Recommend call. items is ignored unless
// the outcome is success.
func RecordRecommendation(outcome string, items int, duration time.Duration) {
	RecommendationsTotal.WithLabelValues(outcome).Inc()
	if outcome == "success" {
		RecommendationItems.Observe(float64(items))
		RecommendationDuration.Observe(duration.Seconds())
	}
}

// RecordCacheLookup records a source cache hit or miss.
func RecordCacheLookup(source string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(source).Inc()
	} else {
		CacheMisses.WithLabelValues(source).Inc()
	}
}

// RecordThrottleWait records time blocked on an outbound limiter.
func RecordThrottleWait(provider string, d time.Duration) {
	UpstreamThrottleWait.WithLabelValues(provider).Observe(d.Seconds())
}
