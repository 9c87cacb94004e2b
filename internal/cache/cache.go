// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

package cache

import (
	"context"
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

// DefaultCleanupInterval is how often Serve sweeps expired entries.
const DefaultCleanupInterval = time.Minute

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Hits        int64
	Misses      int64
	Evictions   int64
	TotalKeys   int64
	LastCleanup time.Time
}

// Cache is a TTL cache with an optional size bound. The zero value is not
// usable; call New.
type Cache[V any] struct {
	mu         sync.RWMutex
	entries    map[string]entry[V]
	ttl        time.Duration
	maxEntries int
	now        func() time.Time

	statsMu sync.Mutex
	stats   Stats
}

// New creates a cache whose entries live for ttl. maxEntries <= 0 means
// unbounded; otherwise inserting into a full cache evicts the entry closest
// to expiry.
func New[V any](ttl time.Duration, maxEntries int) *Cache[V] {
	return &Cache[V]{
		entries:    make(map[string]entry[V]),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// Get returns the value for key if present and unexpired.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	var zero V
	if !ok {
		c.count(func(s *Stats) { s.Misses++ })
		return zero, false
	}

	if c.now().After(e.expiresAt) {
		c.mu.Lock()
		// Re-check: a concurrent Set may have refreshed the entry.
		if cur, still := c.entries[key]; still && c.now().After(cur.expiresAt) {
			delete(c.entries, key)
			c.count(func(s *Stats) { s.Evictions++ })
		}
		c.mu.Unlock()
		c.count(func(s *Stats) { s.Misses++ })
		return zero, false
	}

	c.count(func(s *Stats) { s.Hits++ })
	return e.value, true
}

// Set stores value with the cache's default TTL.
func (c *Cache[V]) Set(key string, value V) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores value with a custom TTL.
func (c *Cache[V]) SetWithTTL(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && c.maxEntries > 0 && len(c.entries) >= c.maxEntries {
		c.evictSoonestLocked()
	}
	c.entries[key] = entry[V]{value: value, expiresAt: c.now().Add(ttl)}
	n := int64(len(c.entries))
	c.count(func(s *Stats) { s.TotalKeys = n })
}

// evictSoonestLocked drops the entry nearest to expiry. Caller holds mu.
func (c *Cache[V]) evictSoonestLocked() {
	var victim string
	var soonest time.Time
	for k, e := range c.entries {
		if victim == "" || e.expiresAt.Before(soonest) {
			victim, soonest = k, e.expiresAt
		}
	}
	if victim != "" {
		delete(c.entries, victim)
		c.count(func(s *Stats) { s.Evictions++ })
	}
}

// Len returns the number of stored entries, expired or not.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// GetStats returns a copy of the counters. The readiness endpoint reports it.
func (c *Cache[V]) GetStats() Stats {
	c.statsMu.Lock()
	defer c.statsMu.Unlock()
	return c.stats
}

// HitRate returns hits as a percentage of lookups.
func (c *Cache[V]) HitRate() float64 {
	s := c.GetStats()
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

// Cleanup removes expired entries and returns how many were dropped.
func (c *Cache[V]) Cleanup() int {
	now := c.now()

	c.mu.Lock()
	removed := 0
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
			removed++
		}
	}
	n := int64(len(c.entries))
	c.mu.Unlock()

	c.count(func(s *Stats) {
		s.Evictions += int64(removed)
		s.TotalKeys = n
		s.LastCleanup = now
	})
	return removed
}

// Serve sweeps expired entries every DefaultCleanupInterval until ctx is
// done. It satisfies suture.Service.
func (c *Cache[V]) Serve(ctx context.Context) error {
	return c.ServeEvery(ctx, DefaultCleanupInterval)
}

// ServeEvery is Serve with a custom interval.
func (c *Cache[V]) ServeEvery(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			c.Cleanup()
		}
	}
}

func (c *Cache[V]) String() string {
	return "source-cache-janitor"
}

func (c *Cache[V]) count(fn func(*Stats)) {
	c.statsMu.Lock()
	fn(&c.stats)
	c.statsMu.Unlock()
}

// GenerateKey builds a compact key from a namespace and any
// JSON-serializable parameters.
func GenerateKey(namespace string, params interface{}) string {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Sprintf("%s:%v", namespace, params)
	}
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", namespace, hash[:16])
}
