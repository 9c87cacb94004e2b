// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

/*
Package config loads and validates service configuration.

Configuration is layered with koanf, lowest priority first:

 1. Built-in defaults (defaultConfig)
 2. YAML file: CONFIG_PATH, else config.yaml, config.yml, /etc/moodlight/config.yaml
 3. Environment variables listed in envTransformFunc

Unmapped environment variables are ignored.

# Environment Variables

Server:
  - HTTP_HOST, HTTP_PORT, SERVER_TIMEOUT, ENVIRONMENT

Security:
  - AUTH_MODE (jwt, none), JWT_SECRET, SESSION_TIMEOUT
  - CORS_ORIGINS (comma-separated)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Providers:
  - TMDB_API_KEY, TMDB_BASE_URL, TMDB_LANGUAGE, TMDB_REQUESTS_PER_SECOND
  - YOUTUBE_API_KEY, YOUTUBE_BASE_URL, YOUTUBE_REQUESTS_PER_SECOND
  - YELP_API_KEY, YELP_BASE_URL, YELP_REQUESTS_PER_SECOND

A provider without an API key is disabled; the aggregator still answers
from the remaining sources.

Aggregator:
  - SOURCE_TIMEOUT, ITEMS_PER_SOURCE, DEFAULT_LOCATION
  - CACHE_ENABLED, CACHE_TTL, CACHE_MAX_ENTRIES, BREAKER_ENABLED

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER
*/
package config
