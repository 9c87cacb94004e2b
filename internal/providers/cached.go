// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

package providers

import (
	"context"
	"strings"

	"github.com/tomtom215/moodlight/internal/cache"
	"github.com/tomtom215/moodlight/internal/metrics"
	"github.com/tomtom215/moodlight/internal/recommend"
)

// CachedSource serves repeated queries from a TTL cache. Only successful
// fetches are stored, so a failing upstream is retried on the next call.
type CachedSource struct {
	inner recommend.Source
	store *cache.Cache[[]recommend.Item]
}

var _ recommend.Source = (*CachedSource)(nil)

// NewCachedSource wraps inner. Several sources may share one store; keys
// are namespaced by source name.
func NewCachedSource(inner recommend.Source, store *cache.Cache[[]recommend.Item]) *CachedSource {
	return &CachedSource{inner: inner, store: store}
}

func (s *CachedSource) Name() string { return s.inner.Name() }

func (s *CachedSource) Fetch(ctx context.Context, q recommend.Query) ([]recommend.Item, error) {
	key := cache.GenerateKey(s.inner.Name(), cacheParams(s.inner.Name(), q))

	if items, ok := s.store.Get(key); ok {
		metrics.RecordCacheLookup(s.inner.Name(), true)
		return cloneItems(items), nil
	}
	metrics.RecordCacheLookup(s.inner.Name(), false)

	items, err := s.inner.Fetch(ctx, q)
	if err != nil {
		return nil, err
	}

	s.store.Set(key, cloneItems(items))
	metrics.CacheEntries.Set(float64(s.store.Len()))
	return items, nil
}

// cacheParams keeps only the query fields a source actually reads, so moods
// sharing a genre share a movie entry.
func cacheParams(name string, q recommend.Query) map[string]any {
	switch name {
	case MoviesSourceName:
		return map[string]any{"genre": int(q.Genre), "limit": q.Limit}
	case VideosSourceName:
		return map[string]any{"query": q.VideoQuery, "limit": q.Limit}
	case TherapistsSourceName:
		return map[string]any{"location": strings.ToLower(strings.TrimSpace(q.Location)), "limit": q.Limit}
	default:
		return map[string]any{
			"mood":     string(q.Mood),
			"genre":    int(q.Genre),
			"query":    q.VideoQuery,
			"location": q.Location,
			"limit":    q.Limit,
		}
	}
}

func cloneItems(items []recommend.Item) []recommend.Item {
	if items == nil {
		return nil
	}
	out := make([]recommend.Item, len(items))
	copy(out, items)
	return out
}
