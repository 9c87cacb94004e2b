// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

package recommend

import (
	"context"
	"time"

	"github.com/tomtom215/moodlight/internal/mood"
)

// Query carries the mapped parameters every source receives. Each source
// reads only the fields it needs.
type Query struct {
	Mood       mood.Signal
	Genre      mood.GenreID
	VideoQuery string
	Location   string
	Limit      int
}

// Source fetches items from one upstream provider. Implementations should
// honour ctx cancellation and may return at most q.Limit items; the
// orchestrator truncates anything beyond that.
type Source interface {
	Name() string
	Fetch(ctx context.Context, q Query) ([]Item, error)
}

// FetchResult is how one source settled. Exactly one of Items or Err is
// meaningful: a failed fetch has nil Items.
type FetchResult struct {
	Source   string
	Items    []Item
	Err      error
	Duration time.Duration
}

// OK reports whether the fetch succeeded (possibly with zero items).
func (r FetchResult) OK() bool {
	return r.Err == nil
}

// SourceFunc adapts a function to Source.
type SourceFunc struct {
	SourceName string
	Fn         func(ctx context.Context, q Query) ([]Item, error)
}

func (f SourceFunc) Name() string { return f.SourceName }

func (f SourceFunc) Fetch(ctx context.Context, q Query) ([]Item, error) {
	return f.Fn(ctx, q)
}
