// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

// Package main is the entry point for the Moodlight server.
//
// Moodlight turns a caller's self-reported mood into a short, ordered list
// of recommendations: movies from TMDB, videos from YouTube, nearby
// therapists from Yelp, and one daily affirmation.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: defaults, optional config.yaml, then environment (Koanf v2)
//  2. Logging: zerolog global logger
//  3. Sources: provider clients, circuit breakers and the response cache
//  4. Orchestrator: concurrent gather and fixed-order merge
//  5. Authentication: JWT bearer tokens or AUTH_MODE=none
//  6. HTTP Server: Chi router under a suture supervisor tree
//
// # Configuration
//
// Provider credentials:
//   - TMDB_API_KEY: movie discovery
//   - YOUTUBE_API_KEY: video search
//   - YELP_API_KEY: therapist search
//
// A provider without a key is disabled; its slot simply contributes no
// items. For JWT authentication (default) JWT_SECRET must hold 32+
// characters.
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the supervisor context. The HTTP server drains
// in-flight requests for SHUTDOWN_TIMEOUT before exiting.
//
// # Example Usage
//
//	export TMDB_API_KEY=... YOUTUBE_API_KEY=... YELP_API_KEY=...
//	export JWT_SECRET=$(openssl rand -base64 32)
//	./moodlight
//
// Development without tokens:
//
//	AUTH_MODE=none LOG_FORMAT=console ./moodlight
package main
