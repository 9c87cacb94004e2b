// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/moodlight/internal/config"
	"github.com/tomtom215/moodlight/internal/mood"
)

// MovieDiscoverer discovers popular movies in a genre.
type MovieDiscoverer interface {
	DiscoverMovies(ctx context.Context, genre mood.GenreID) ([]TMDBMovie, error)
}

var _ MovieDiscoverer = (*TMDBClient)(nil)

// TMDBMovie is one result of /discover/movie.
type TMDBMovie struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	VoteAverage float64 `json:"vote_average"`
}

type tmdbDiscoverResponse struct {
	Page    int         `json:"page"`
	Results []TMDBMovie `json:"results"`
}

// TMDBClient provides access to the TMDB v3 REST API.
type TMDBClient struct {
	baseURL    string
	apiKey     string
	language   string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewTMDBClient creates a TMDB client. It fails with ErrMissingAPIKey when
// cfg carries no key.
func NewTMDBClient(cfg *config.TMDBConfig) (*TMDBClient, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("tmdb: %w", ErrMissingAPIKey)
	}
	return &TMDBClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		language:   cfg.Language,
		httpClient: newHTTPClient(cfg.Timeout),
		limiter:    newLimiter(cfg.RequestsPerSecond),
	}, nil
}

// DiscoverMovies returns the first page of genre results sorted by
// popularity, most popular first.
func (c *TMDBClient) DiscoverMovies(ctx context.Context, genre mood.GenreID) ([]TMDBMovie, error) {
	if err := throttle(ctx, c.limiter, "tmdb"); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("with_genres", strconv.Itoa(int(genre)))
	params.Set("sort_by", "popularity.desc")
	params.Set("page", "1")
	if c.language != "" {
		params.Set("language", c.language)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/discover/movie?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build tmdb request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tmdb discover request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError("tmdb discover", resp)
	}

	var payload tmdbDiscoverResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode tmdb discover response: %w", err)
	}
	return payload.Results, nil
}
