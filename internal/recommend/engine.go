// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

package recommend

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/moodlight/internal/logging"
	"github.com/tomtom215/moodlight/internal/metrics"
	"github.com/tomtom215/moodlight/internal/mood"
)

// Sources holds the three provider slots. Merge order follows field order.
type Sources struct {
	Movies     Source
	Videos     Source
	Therapists Source
}

// Orchestrator runs the scatter-gather for one request at a time per call.
// It holds no per-request state and is safe for concurrent use.
type Orchestrator struct {
	config  *Config
	logger  func() zerolog.Logger
	sources [3]Source
	now     func() time.Time
}

// NewOrchestrator validates cfg and wires the three sources.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewOrchestrator(cfg *Config, sources Sources, logger zerolog.Logger) (*Orchestrator, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	slots := [3]Source{sources.Movies, sources.Videos, sources.Therapists}
	for i, s := range slots {
		if s == nil {
			return nil, fmt.Errorf("slot %d: %w", i, ErrNilSource)
		}
	}

	base := logger.With().Str("component", "recommend").Logger()
	return &Orchestrator{
		config:  cfg,
		logger:  func() zerolog.Logger { return base },
		sources: slots,
		now:     time.Now,
	}, nil
}

// SetLoggerFunc resolves the base logger on every request instead of using
// the one given to NewOrchestrator, so a reconfigured global logger applies
// without a restart. fn's logger is used as returned. Call it before serving.
func (o *Orchestrator) SetLoggerFunc(fn func() zerolog.Logger) {
	o.logger = fn
}

// SetClock replaces the time source used for the affirmation.
func (o *Orchestrator) SetClock(now func() time.Time) {
	o.now = now
}

// SourceNames returns the wired source names in merge order.
func (o *Orchestrator) SourceNames() []string {
	names := make([]string, len(o.sources))
	for i, s := range o.sources {
		names[i] = s.Name()
	}
	return names
}

// Recommend assembles the recommendation list for req.
//
// It returns ErrUnauthenticated, without contacting any source, when
// req.CallerID is empty. Source failures never fail the call. Anything that
// escapes the per-source boundary is reported as ErrInternal.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (o *Orchestrator) Recommend(ctx context.Context, req Request) (resp *Response, err error) {
	start := time.Now()
	logger := o.requestLogger(ctx, req)
	logger.Debug().Str("stage", string(StagePending)).Msg("Recommendation requested")

	defer func() {
		if r := recover(); r != nil {
			logger.Error().
				Interface("panic", r).
				Str("stack", string(debug.Stack())).
				Msg("Recommendation assembly panicked")
			metrics.RecordRecommendation("internal_error", 0, time.Since(start))
			resp, err = nil, fmt.Errorf("%w: %v", ErrInternal, r)
		}
	}()

	if req.CallerID == "" {
		logger.Debug().Str("stage", string(StageRejected)).Msg("Rejected request without caller identity")
		metrics.RecordRecommendation("unauthenticated", 0, time.Since(start))
		return nil, ErrUnauthenticated
	}

	q := o.buildQuery(req)
	logger.Debug().
		Str("stage", string(StageGathering)).
		Int("genre", int(q.Genre)).
		Str("video_query", q.VideoQuery).
		Str("location", q.Location).
		Msg("Gathering from sources")

	results := o.gather(ctx, q)
	items := o.merge(results, logger)
	items = append(items, PickAffirmation(o.now()))
	logger.Debug().Str("stage", string(StageAssembled)).Int("items", len(items)).Msg("Recommendations assembled")

	metrics.RecordRecommendation("success", len(items), time.Since(start))
	logger.Debug().
		Str("stage", string(StageReturned)).
		Dur("duration", time.Since(start)).
		Msg("Recommendations returned")

	return &Response{Recommendations: items, Sources: results[:]}, nil
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (o *Orchestrator) requestLogger(ctx context.Context, req Request) zerolog.Logger {
	logCtx := o.logger().With().Str("mood", req.Mood.ForLog())
	if id := logging.RequestIDFromContext(ctx); id != "" {
		logCtx = logCtx.Str("request_id", id)
	}
	if id := logging.CorrelationIDFromContext(ctx); id != "" {
		logCtx = logCtx.Str("correlation_id", id)
	}
	return logCtx.Logger()
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (o *Orchestrator) buildQuery(req Request) Query {
	location := req.Profile.Location
	if location == "" {
		location = o.config.DefaultLocation
	}
	return Query{
		Mood:       req.Mood,
		Genre:      mood.GenreFor(req.Mood),
		VideoQuery: mood.VideoQueryFor(req.Mood),
		Location:   location,
		Limit:      o.config.ItemsPerSource,
	}
}

// gather runs every source concurrently and waits for all of them. The
// group has no shared context, so one failure never cancels a sibling.
func (o *Orchestrator) gather(ctx context.Context, q Query) [3]FetchResult {
	var results [3]FetchResult
	var g errgroup.Group

	for i, src := range o.sources {
		g.Go(func() error {
			results[i] = o.fetch(ctx, src, q)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// fetch calls one source under its timeout. The call runs in its own
// goroutine so a source that ignores ctx still cannot hold up the request.
func (o *Orchestrator) fetch(ctx context.Context, src Source, q Query) FetchResult {
	name := src.Name()
	start := time.Now()

	fetchCtx := ctx
	if o.config.SourceTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, o.config.SourceTimeout)
		defer cancel()
	}

	type outcome struct {
		items []Item
		err   error
	}
	done := make(chan outcome, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: fmt.Errorf("source %s panicked: %v", name, r)}
			}
		}()
		items, err := src.Fetch(fetchCtx, q)
		done <- outcome{items: items, err: err}
	}()

	res := FetchResult{Source: name}
	select {
	case out := <-done:
		res.Items, res.Err = out.items, out.err
	case <-fetchCtx.Done():
		res.Err = fmt.Errorf("source %s: %w", name, fetchCtx.Err())
	}
	res.Duration = time.Since(start)

	if res.Err != nil {
		res.Items = nil
	} else if len(res.Items) > q.Limit {
		res.Items = res.Items[:q.Limit]
	}

	return res
}

// merge concatenates results in slot order. Failures are logged and
// contribute nothing.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func (o *Orchestrator) merge(results [3]FetchResult, logger zerolog.Logger) []Item {
	total := 1
	for i := range results {
		total += len(results[i].Items)
	}
	items := make([]Item, 0, total)

	for i := range results {
		r := &results[i]
		outcome := fetchOutcome(r.Err)
		metrics.RecordSourceFetch(r.Source, outcome, r.Duration, len(r.Items))

		if r.Err != nil {
			logger.Warn().
				Str("source", r.Source).
				Str("outcome", outcome).
				Dur("duration", r.Duration).
				Err(r.Err).
				Msg("Source fetch failed, continuing without it")
			continue
		}
		items = append(items, r.Items...)
	}

	return items
}

func fetchOutcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "failure"
	}
}
