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
)

// BusinessSearcher searches a local business directory.
type BusinessSearcher interface {
	SearchBusinesses(ctx context.Context, term, location string, limit int) ([]YelpBusiness, error)
}

var _ BusinessSearcher = (*YelpClient)(nil)

// YelpBusiness is one /businesses/search result.
type YelpBusiness struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
	ImageURL    string  `json:"image_url"`
	URL         string  `json:"url"`
	Location    struct {
		Address1       string   `json:"address1"`
		City           string   `json:"city"`
		DisplayAddress []string `json:"display_address"`
	} `json:"location"`
}

// Address returns the street line, falling back to the display address.
func (b YelpBusiness) Address() string {
	if b.Location.Address1 != "" {
		return b.Location.Address1
	}
	return strings.Join(b.Location.DisplayAddress, ", ")
}

type yelpSearchResponse struct {
	Businesses []YelpBusiness `json:"businesses"`
	Total      int            `json:"total"`
}

// YelpClient provides access to the Yelp Fusion API.
type YelpClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewYelpClient creates a Yelp client.
func NewYelpClient(cfg *config.YelpConfig) (*YelpClient, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("yelp: %w", ErrMissingAPIKey)
	}
	return &YelpClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: newHTTPClient(cfg.Timeout),
		limiter:    newLimiter(cfg.RequestsPerSecond),
	}, nil
}

// SearchBusinesses searches near location using bearer-token auth.
func (c *YelpClient) SearchBusinesses(ctx context.Context, term, location string, limit int) ([]YelpBusiness, error) {
	if err := throttle(ctx, c.limiter, "yelp"); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("term", term)
	params.Set("location", location)
	params.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/businesses/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build yelp request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yelp search request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError("yelp search", resp)
	}

	var payload yelpSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode yelp search response: %w", err)
	}
	return payload.Businesses, nil
}
