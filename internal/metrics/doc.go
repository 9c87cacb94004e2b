// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

/*
Package metrics holds the Prometheus collectors for the service.

All collectors are registered on the default registry through promauto and
exposed at /metrics by the API router.

# Available Metrics

API:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests

Sources:
  - source_fetch_total{source,outcome}
  - source_fetch_duration_seconds{source}
  - source_items_returned_total{source}
  - upstream_throttle_wait_seconds{provider}

Recommendations:
  - recommendations_total{outcome}
  - recommendation_items
  - recommendation_duration_seconds

Circuit breakers and cache:
  - circuit_breaker_state{name}, circuit_breaker_requests_total{name,result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name,from_state,to_state}
  - source_cache_hits_total{source}, source_cache_misses_total{source}
  - source_cache_entries
*/
package metrics
