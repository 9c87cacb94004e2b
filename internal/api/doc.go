// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

/*
Package api provides the HTTP REST API layer for Moodlight.

Key Components:

  - Router: Chi route configuration and middleware stack
  - Handler: request handlers for recommendations and health probes
  - ResponseWriter: standardized JSON envelope with request metadata
  - ChiMiddleware: go-chi/cors and go-chi/httprate factories

Endpoints:

	POST /api/v1/recommendations   mood-driven recommendations (auth required)
	GET  /api/v1/health/live       liveness probe
	GET  /api/v1/health/ready      readiness probe with per-source status
	GET  /metrics                  Prometheus exposition

Response Envelope:

	{"success": true,  "data": {...}, "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 12}}
	{"success": false, "error": {"code": "UNAUTHORIZED", "message": "..."}, "meta": {...}}

Usage Example:

	handler := api.NewHandler(orchestrator, sources)
	router := api.NewRouter(handler, authMiddleware, api.NewChiMiddlewareFromConfig(&cfg.Security))
	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}
*/
package api
