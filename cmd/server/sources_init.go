// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

package main

import (
	"github.com/tomtom215/moodlight/internal/api"
	"github.com/tomtom215/moodlight/internal/cache"
	"github.com/tomtom215/moodlight/internal/config"
	"github.com/tomtom215/moodlight/internal/logging"
	"github.com/tomtom215/moodlight/internal/providers"
	"github.com/tomtom215/moodlight/internal/recommend"
)

// sourceSet is the wired provider stack plus its readiness view.
type sourceSet struct {
	sources recommend.Sources
	status  []api.SourceStatus

	// cache is nil when response caching is disabled.
	cache *cache.Cache[[]recommend.Item]
}

// buildSources creates one Source per provider slot.
//
// Each enabled source is wrapped as cache(breaker(provider)) according to
// the aggregator config, so cache hits never count against the breaker. A
// provider without credentials becomes a DisabledSource and is left
// unwrapped.
func buildSources(cfg *config.Config) *sourceSet {
	set := &sourceSet{}
	if cfg.Aggregator.CacheEnabled {
		set.cache = cache.New[[]recommend.Item](cfg.Aggregator.CacheTTL, cfg.Aggregator.CacheMaxEntries)
	}

	tmdb := &cfg.Providers.TMDB
	set.sources.Movies = set.add(cfg, providers.MoviesSourceName,
		func() (recommend.Source, error) {
			client, err := providers.NewTMDBClient(tmdb)
			if err != nil {
				return nil, err
			}
			return providers.NewMovieSource(client, tmdb), nil
		})

	youtube := &cfg.Providers.YouTube
	set.sources.Videos = set.add(cfg, providers.VideosSourceName,
		func() (recommend.Source, error) {
			client, err := providers.NewYouTubeClient(youtube)
			if err != nil {
				return nil, err
			}
			return providers.NewVideoSource(client, youtube), nil
		})

	yelp := &cfg.Providers.Yelp
	set.sources.Therapists = set.add(cfg, providers.TherapistsSourceName,
		func() (recommend.Source, error) {
			client, err := providers.NewYelpClient(yelp)
			if err != nil {
				return nil, err
			}
			return providers.NewTherapistSource(client, yelp), nil
		})

	return set
}

func (s *sourceSet) add(cfg *config.Config, name string, build func() (recommend.Source, error)) recommend.Source {
	src, err := build()
	if err != nil {
		logging.Warn().Err(err).Str("source", name).Msg("Source disabled")
		s.status = append(s.status, api.SourceStatus{Name: name})
		return providers.NewDisabledSource(name)
	}

	status := api.SourceStatus{Name: name, Enabled: true}
	if cfg.Aggregator.BreakerEnabled {
		breaker := providers.NewBreakerSource(src)
		status.BreakerState = breaker.State
		src = breaker
	}
	if s.cache != nil {
		src = providers.NewCachedSource(src, s.cache)
	}

	logging.Info().
		Str("source", name).
		Bool("breaker", cfg.Aggregator.BreakerEnabled).
		Bool("cache", s.cache != nil).
		Msg("Source enabled")

	s.status = append(s.status, status)
	return src
}

// orchestratorConfig maps the aggregator section onto recommend.Config.
func orchestratorConfig(agg *config.AggregatorConfig) *recommend.Config {
	return &recommend.Config{
		SourceTimeout:   agg.SourceTimeout,
		ItemsPerSource:  agg.ItemsPerSource,
		DefaultLocation: agg.DefaultLocation,
	}
}
