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

// VideoSearcher searches for videos matching a free-text query.
type VideoSearcher interface {
	SearchVideos(ctx context.Context, query string, maxResults int) ([]YouTubeVideo, error)
}

var _ VideoSearcher = (*YouTubeClient)(nil)

// YouTubeVideo is a flattened search hit.
type YouTubeVideo struct {
	VideoID      string
	Title        string
	Description  string
	ThumbnailURL string
}

type youTubeThumbnail struct {
	URL string `json:"url"`
}

type youTubeSearchResponse struct {
	Items []struct {
		ID struct {
			Kind    string `json:"kind"`
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Thumbnails  struct {
				Default *youTubeThumbnail `json:"default"`
				Medium  *youTubeThumbnail `json:"medium"`
				High    *youTubeThumbnail `json:"high"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

// YouTubeClient provides access to the YouTube Data API v3 search endpoint.
type YouTubeClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewYouTubeClient creates a YouTube client.
func NewYouTubeClient(cfg *config.YouTubeConfig) (*YouTubeClient, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("youtube: %w", ErrMissingAPIKey)
	}
	return &YouTubeClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: newHTTPClient(cfg.Timeout),
		limiter:    newLimiter(cfg.RequestsPerSecond),
	}, nil
}

// SearchVideos runs a video-only search. Hits without a video id are
// skipped.
func (c *YouTubeClient) SearchVideos(ctx context.Context, query string, maxResults int) ([]YouTubeVideo, error) {
	if err := throttle(ctx, c.limiter, "youtube"); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query)
	params.Set("type", "video")
	params.Set("maxResults", strconv.Itoa(maxResults))
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build youtube request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("youtube search request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError("youtube search", resp)
	}

	var payload youTubeSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode youtube search response: %w", err)
	}

	videos := make([]YouTubeVideo, 0, len(payload.Items))
	for i := range payload.Items {
		it := &payload.Items[i]
		if it.ID.VideoID == "" {
			continue
		}
		thumbs := it.Snippet.Thumbnails
		videos = append(videos, YouTubeVideo{
			VideoID:      it.ID.VideoID,
			Title:        it.Snippet.Title,
			Description:  it.Snippet.Description,
			ThumbnailURL: firstThumbnail(thumbs.High, thumbs.Medium, thumbs.Default),
		})
	}
	return videos, nil
}

func firstThumbnail(thumbs ...*youTubeThumbnail) string {
	for _, t := range thumbs {
		if t != nil && t.URL != "" {
			return t.URL
		}
	}
	return ""
}
