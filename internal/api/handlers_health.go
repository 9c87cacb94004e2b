// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

package api

import (
	"net/http"
	"time"
)

// HealthStatus is the payload of the health endpoints.
type HealthStatus struct {
	Status        string         `json:"status"`
	UptimeSeconds float64        `json:"uptime_seconds"`
	Sources       []SourceHealth `json:"sources,omitempty"`
	Cache         *CacheHealth   `json:"cache,omitempty"`
}

// SourceHealth is the readiness view of one source.
type SourceHealth struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
	Circuit string `json:"circuit,omitempty"`
}

// CacheHealth is the readiness view of the response cache.
type CacheHealth struct {
	Entries     int64      `json:"entries"`
	Hits        int64      `json:"hits"`
	Misses      int64      `json:"misses"`
	Evictions   int64      `json:"evictions"`
	HitRate     float64    `json:"hit_rate_percent"`
	LastCleanup *time.Time `json:"last_cleanup,omitempty"`
}

func (h *Handler) cacheHealth() *CacheHealth {
	if h.cache == nil {
		return nil
	}
	s := h.cache.GetStats()
	ch := &CacheHealth{
		Entries:   s.TotalKeys,
		Hits:      s.Hits,
		Misses:    s.Misses,
		Evictions: s.Evictions,
		HitRate:   h.cache.HitRate(),
	}
	if !s.LastCleanup.IsZero() {
		ch.LastCleanup = &s.LastCleanup
	}
	return ch
}

// HealthLive is the Kubernetes liveness probe. It only confirms the process
// is serving HTTP.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(HealthStatus{
		Status:        "alive",
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	})
}

// HealthReady is the Kubernetes readiness probe.
//
// A recommendation call always succeeds, even with every source down, so
// readiness only degrades when no source can currently be reached. In that
// state the probe returns 503 with the same payload. Cache counters are
// informational and never affect the status.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	status := HealthStatus{
		Status:        "ready",
		UptimeSeconds: time.Since(h.startTime).Seconds(),
		Sources:       make([]SourceHealth, 0, len(h.sources)),
		Cache:         h.cacheHealth(),
	}

	available := 0
	for _, src := range h.sources {
		sh := SourceHealth{Name: src.Name, Enabled: src.Enabled}
		if src.Enabled && src.BreakerState != nil {
			sh.Circuit = src.BreakerState()
		}
		if src.available() {
			available++
		}
		status.Sources = append(status.Sources, sh)
	}

	if len(h.sources) > 0 && available == 0 {
		status.Status = "degraded"
		NewResponseWriter(w, r).Status(http.StatusServiceUnavailable, false, status)
		return
	}

	NewResponseWriter(w, r).Success(status)
}
