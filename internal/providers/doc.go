// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

/*
Package providers implements the upstream content providers behind the
recommendation sources.

Three REST clients talk to the movie discovery API (TMDB), the video search
API (YouTube Data v3) and the local business search API (Yelp Fusion). Each
client throttles outbound calls with a token bucket and decodes responses
with goccy/go-json.

Source adapters turn client results into recommend.Item values:

	MovieSource     -> TMDBClient.DiscoverMovies
	VideoSource     -> YouTubeClient.SearchVideos
	TherapistSource -> YelpClient.SearchBusinesses

Two wrappers add resilience around any recommend.Source:

  - BreakerSource: sony/gobreaker circuit breaker with Prometheus metrics
  - CachedSource: TTL cache of successful fetches keyed by source and query

A provider with no API key is wired as a DisabledSource, which fails every
fetch with ErrSourceDisabled so the orchestrator degrades to the remaining
sources.
*/
package providers
