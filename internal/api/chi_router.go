// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/moodlight/internal/auth"
	"github.com/tomtom215/moodlight/internal/middleware"
)

// Router wires handlers to the Chi mux.
type Router struct {
	handler       *Handler
	auth          *auth.Middleware
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a new router. A nil chiMW uses the default
// configuration; a nil authMiddleware leaves every caller unresolved.
func NewRouter(handler *Handler, authMiddleware *auth.Middleware, chiMW *ChiMiddleware) *Router {
	if chiMW == nil {
		chiMW = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		auth:          authMiddleware,
		chiMiddleware: chiMW,
	}
}

// chiMiddleware adapts a HandlerFunc middleware to Chi's Handler signature.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

func (router *Router) authenticate() func(http.Handler) http.Handler {
	if router.auth == nil {
		return noopMiddleware
	}
	return router.auth.Authenticate
}

// SetupChi builds the HTTP handler.
//
// Middleware order (outermost first): request ID, real IP, panic recovery,
// CORS. Route groups then add rate limiting, security headers, request
// metrics and caller resolution.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		NewResponseWriter(w, req).NotFound("Resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		NewResponseWriter(w, req).MethodNotAllowed()
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/health", func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimitHealth())
			r.Use(chiMiddleware(middleware.PrometheusMetrics))
			r.Get("/live", router.handler.HealthLive)
			r.Get("/ready", router.handler.HealthReady)
		})

		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimit())
			r.Use(APISecurityHeaders())
			r.Use(chiMiddleware(middleware.PrometheusMetrics))
			r.Use(router.authenticate())
			r.Post("/recommendations", router.handler.Recommendations)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
