// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

package providers

import (
	"context"
	"strconv"
	"strings"

	"github.com/tomtom215/moodlight/internal/config"
	"github.com/tomtom215/moodlight/internal/recommend"
)

// Source names, also used as metric and log labels.
const (
	MoviesSourceName     = "movies"
	VideosSourceName     = "videos"
	TherapistsSourceName = "therapists"
)

// MovieSource maps genre discovery results to movie items.
type MovieSource struct {
	client       MovieDiscoverer
	imageBaseURL string
	siteURL      string
}

// NewMovieSource wraps client. Image and page URLs are built from the
// configured bases plus the provider's poster path and id.
func NewMovieSource(client MovieDiscoverer, cfg *config.TMDBConfig) *MovieSource {
	return &MovieSource{
		client:       client,
		imageBaseURL: strings.TrimRight(cfg.ImageBaseURL, "/"),
		siteURL:      strings.TrimRight(cfg.SiteURL, "/"),
	}
}

func (s *MovieSource) Name() string { return MoviesSourceName }

// Fetch discovers movies for q.Genre and keeps the first q.Limit.
func (s *MovieSource) Fetch(ctx context.Context, q recommend.Query) ([]recommend.Item, error) {
	movies, err := s.client.DiscoverMovies(ctx, q.Genre)
	if err != nil {
		return nil, err
	}
	movies = capSlice(movies, q.Limit)

	items := make([]recommend.Item, 0, len(movies))
	for i := range movies {
		m := &movies[i]
		var image string
		if m.PosterPath != "" {
			image = s.imageBaseURL + m.PosterPath
		}
		items = append(items, recommend.Movie{
			ID:          m.ID,
			Title:       m.Title,
			Overview:    m.Overview,
			ImageURL:    image,
			PageURL:     s.siteURL + "/" + strconv.FormatInt(m.ID, 10),
			VoteAverage: m.VoteAverage,
		}.Item())
	}
	return items, nil
}

// VideoSource maps video search hits to video items.
type VideoSource struct {
	client   VideoSearcher
	watchURL string
}

func NewVideoSource(client VideoSearcher, cfg *config.YouTubeConfig) *VideoSource {
	return &VideoSource{client: client, watchURL: cfg.WatchURL}
}

func (s *VideoSource) Name() string { return VideosSourceName }

// Fetch searches for q.VideoQuery, requesting exactly q.Limit results.
func (s *VideoSource) Fetch(ctx context.Context, q recommend.Query) ([]recommend.Item, error) {
	videos, err := s.client.SearchVideos(ctx, q.VideoQuery, q.Limit)
	if err != nil {
		return nil, err
	}
	videos = capSlice(videos, q.Limit)

	items := make([]recommend.Item, 0, len(videos))
	for i := range videos {
		v := &videos[i]
		items = append(items, recommend.Video{
			VideoID:      v.VideoID,
			Title:        v.Title,
			Description:  v.Description,
			ThumbnailURL: v.ThumbnailURL,
			WatchURL:     s.watchURL + "?v=" + v.VideoID,
		}.Item())
	}
	return items, nil
}

// TherapistSource maps business search results near the caller's location
// to therapist items.
type TherapistSource struct {
	client BusinessSearcher
	term   string
}

func NewTherapistSource(client BusinessSearcher, cfg *config.YelpConfig) *TherapistSource {
	return &TherapistSource{client: client, term: cfg.SearchTerm}
}

func (s *TherapistSource) Name() string { return TherapistsSourceName }

func (s *TherapistSource) Fetch(ctx context.Context, q recommend.Query) ([]recommend.Item, error) {
	businesses, err := s.client.SearchBusinesses(ctx, s.term, q.Location, q.Limit)
	if err != nil {
		return nil, err
	}
	businesses = capSlice(businesses, q.Limit)

	items := make([]recommend.Item, 0, len(businesses))
	for i := range businesses {
		b := &businesses[i]
		items = append(items, recommend.Therapist{
			BusinessID:  b.ID,
			Name:        b.Name,
			Address:     b.Address(),
			Rating:      b.Rating,
			ReviewCount: b.ReviewCount,
			ImageURL:    b.ImageURL,
			PageURL:     b.URL,
		}.Item())
	}
	return items, nil
}

// DisabledSource stands in for a provider with no credentials.
type DisabledSource struct {
	name string
}

func NewDisabledSource(name string) *DisabledSource {
	return &DisabledSource{name: name}
}

func (s *DisabledSource) Name() string { return s.name }

func (s *DisabledSource) Fetch(context.Context, recommend.Query) ([]recommend.Item, error) {
	return nil, ErrSourceDisabled
}

func capSlice[T any](s []T, limit int) []T {
	if limit >= 0 && len(s) > limit {
		return s[:limit]
	}
	return s
}
