// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

package api

import (
	"context"
	"time"

	"github.com/tomtom215/moodlight/internal/cache"
	"github.com/tomtom215/moodlight/internal/recommend"
)

// Recommender assembles recommendations for one caller.
// *recommend.Orchestrator satisfies it.
type Recommender interface {
	Recommend(ctx context.Context, req recommend.Request) (*recommend.Response, error)
}

// SourceStatus describes one configured source for the readiness probe.
type SourceStatus struct {
	Name    string
	Enabled bool

	// BreakerState reports the circuit state. Nil when breakers are off.
	BreakerState func() string
}

func (s SourceStatus) available() bool {
	if !s.Enabled {
		return false
	}
	return s.BreakerState == nil || s.BreakerState() != "open"
}

// CacheStats exposes the response cache counters. *cache.Cache satisfies it.
type CacheStats interface {
	GetStats() cache.Stats
	HitRate() float64
}

// Handler handles all HTTP API requests.
type Handler struct {
	recommender Recommender
	sources     []SourceStatus
	cache       CacheStats
	startTime   time.Time
}

// NewHandler creates a new API handler.
func NewHandler(recommender Recommender, sources []SourceStatus) *Handler {
	return &Handler{
		recommender: recommender,
		sources:     sources,
		startTime:   time.Now(),
	}
}

// SetCacheStats adds the response cache to the readiness payload. Leave it
// unset when caching is disabled.
func (h *Handler) SetCacheStats(c CacheStats) {
	h.cache = c
}
