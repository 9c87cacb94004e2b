// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

/*
Package middleware provides HTTP middleware shared by the API router.

  - RequestID: accepts or generates X-Request-ID and seeds the logging context
  - PrometheusMetrics: request count, latency and in-flight gauge

Both use the http.HandlerFunc shape; the router adapts them to chi.
*/
package middleware
