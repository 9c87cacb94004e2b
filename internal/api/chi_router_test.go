// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moodlight/internal/auth"
	"github.com/tomtom215/moodlight/internal/config"
	"github.com/tomtom215/moodlight/internal/middleware"
	"github.com/tomtom215/moodlight/internal/mood"
	"github.com/tomtom215/moodlight/internal/recommend"
)

const routerTestSecret = "0123456789abcdef0123456789abcdef"

// countingSource returns n items of typ and counts calls.
func countingSource(name string, typ recommend.ItemType, n int, calls *atomic.Int32) recommend.Source {
	return recommend.SourceFunc{
		SourceName: name,
		Fn: func(_ context.Context, _ recommend.Query) ([]recommend.Item, error) {
			calls.Add(1)
			items := make([]recommend.Item, n)
			for i := range items {
				items[i] = recommend.Item{ID: name + "-" + strconv.Itoa(i), Type: typ, Title: name}
			}
			return items, nil
		},
	}
}

type routerFixture struct {
	handler http.Handler
	calls   *atomic.Int32
	jwt     *auth.JWTManager
}

func newRouterFixture(t *testing.T, mode auth.AuthMode) *routerFixture {
	t.Helper()

	calls := &atomic.Int32{}
	orch, err := recommend.NewOrchestrator(nil, recommend.Sources{
		Movies:     countingSource("movies", recommend.ItemMovie, 3, calls),
		Videos:     countingSource("videos", recommend.ItemVideo, 3, calls),
		Therapists: countingSource("therapists", recommend.ItemTherapist, 3, calls),
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewOrchestrator: %v", err)
	}

	jwtManager, err := auth.NewJWTManager(&config.SecurityConfig{
		JWTSecret:      routerTestSecret,
		SessionTimeout: time.Hour,
	})
	if err != nil {
		t.Fatalf("NewJWTManager: %v", err)
	}

	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true

	handler := NewHandler(orch, []SourceStatus{
		{Name: "movies", Enabled: true},
		{Name: "videos", Enabled: true},
		{Name: "therapists", Enabled: true},
	})
	authMW := auth.NewMiddleware(mode, auth.NewJWTAuthenticator(jwtManager))

	return &routerFixture{
		handler: NewRouter(handler, authMW, NewChiMiddleware(cfg)).SetupChi(),
		calls:   calls,
		jwt:     jwtManager,
	}
}

func (f *routerFixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func postRecommendations(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// ===================================================================================================
// Recommendations Endpoint
// ===================================================================================================

func TestRouter_RecommendationsRequiresToken(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t, auth.AuthModeJWT)

	tests := []struct {
		name  string
		token string
	}{
		{"no token", ""},
		{"garbage token", "not-a-jwt"},
	}

	for _, tt := range tests {
		req := postRecommendations(`{"mood":"happy"}`)
		if tt.token != "" {
			req.Header.Set("Authorization", "Bearer "+tt.token)
		}
		rec := f.do(req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s: status = %d, want 401", tt.name, rec.Code)
		}
	}

	if n := f.calls.Load(); n != 0 {
		t.Errorf("sources called %d times without a caller identity", n)
	}
}

func TestRouter_RecommendationsWithToken(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t, auth.AuthModeJWT)
	token, err := f.jwt.GenerateToken("user-7", "sam")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	req := postRecommendations(`{"mood":"anxious","userProfile":{"location":"Boston, MA"}}`)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := f.do(req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if f.calls.Load() != 3 {
		t.Errorf("source calls = %d, want 3", f.calls.Load())
	}

	resp := decodeResponse(t, rec)
	items := resp.Data.(map[string]interface{})["recommendations"].([]interface{})
	if len(items) != 10 {
		t.Fatalf("len(recommendations) = %d, want 10", len(items))
	}

	wantTypes := []string{"movie", "movie", "movie", "video", "video", "video", "therapist", "therapist", "therapist", "affirmation"}
	for i, item := range items {
		if got := item.(map[string]interface{})["type"]; got != wantTypes[i] {
			t.Errorf("item %d type = %v, want %s", i, got, wantTypes[i])
		}
	}

	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("expected security headers on API route")
	}
}

func TestRouter_RecommendationsAuthModeNone(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t, auth.AuthModeNone)
	rec := f.do(postRecommendations(`{"mood":"unknown_value"}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
}

// Missing, empty and oversized moods reach the providers with the default
// genre and video query, and the caller still gets items plus an affirmation.
func TestRouter_RecommendationsMoodDefaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"missing", `{}`},
		{"empty", `{"mood":""}`},
		{"long", `{"mood":"` + strings.Repeat("z", 65) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var seen atomic.Pointer[recommend.Query]
			capture := recommend.SourceFunc{
				SourceName: "movies",
				Fn: func(_ context.Context, q recommend.Query) ([]recommend.Item, error) {
					seen.Store(&q)
					return []recommend.Item{{ID: "movie_1", Type: recommend.ItemMovie}}, nil
				},
			}
			var calls atomic.Int32
			orch, err := recommend.NewOrchestrator(nil, recommend.Sources{
				Movies:     capture,
				Videos:     countingSource("videos", recommend.ItemVideo, 1, &calls),
				Therapists: countingSource("therapists", recommend.ItemTherapist, 1, &calls),
			}, zerolog.Nop())
			if err != nil {
				t.Fatalf("NewOrchestrator: %v", err)
			}
			authMW := auth.NewMiddleware(auth.AuthModeNone, nil)
			handler := NewRouter(NewHandler(orch, nil), authMW, nil).SetupChi()

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, postRecommendations(tt.body))

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
			}
			q := seen.Load()
			if q == nil {
				t.Fatal("movies source not called")
			}
			if q.Genre != mood.DefaultGenre || q.VideoQuery != mood.DefaultVideoQuery {
				t.Errorf("query = %+v, want genre %d and %q", q, mood.DefaultGenre, mood.DefaultVideoQuery)
			}

			resp := decodeResponse(t, rec)
			items := resp.Data.(map[string]interface{})["recommendations"].([]interface{})
			if len(items) != 4 {
				t.Fatalf("len(recommendations) = %d, want 4", len(items))
			}
			if last := items[3].(map[string]interface{}); last["type"] != "affirmation" {
				t.Errorf("last item = %v, want affirmation", last)
			}
		})
	}
}

func TestRouter_NilAuthMiddleware(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	orch, err := recommend.NewOrchestrator(nil, recommend.Sources{
		Movies:     countingSource("movies", recommend.ItemMovie, 1, &calls),
		Videos:     countingSource("videos", recommend.ItemVideo, 1, &calls),
		Therapists: countingSource("therapists", recommend.ItemTherapist, 1, &calls),
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewOrchestrator: %v", err)
	}

	handler := NewRouter(NewHandler(orch, nil), nil, nil).SetupChi()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, postRecommendations(`{"mood":"sad"}`))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if calls.Load() != 0 {
		t.Errorf("sources called %d times", calls.Load())
	}
}

// ===================================================================================================
// Routing
// ===================================================================================================

func TestRouter_Routes(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t, auth.AuthModeNone)

	tests := []struct {
		method     string
		path       string
		wantStatus int
		wantCode   string
	}{
		{http.MethodGet, "/api/v1/health/live", http.StatusOK, ""},
		{http.MethodGet, "/api/v1/health/ready", http.StatusOK, ""},
		{http.MethodGet, "/metrics", http.StatusOK, ""},
		{http.MethodGet, "/api/v1/nope", http.StatusNotFound, ErrCodeNotFound},
		{http.MethodGet, "/api/v1/recommendations", http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed},
	}

	for _, tt := range tests {
		rec := f.do(httptest.NewRequest(tt.method, tt.path, http.NoBody))

		if rec.Code != tt.wantStatus {
			t.Errorf("%s %s: status = %d, want %d", tt.method, tt.path, rec.Code, tt.wantStatus)
			continue
		}
		if tt.wantCode != "" {
			resp := decodeResponse(t, rec)
			if resp.Error == nil || resp.Error.Code != tt.wantCode {
				t.Errorf("%s %s: error = %+v", tt.method, tt.path, resp.Error)
			}
		}
	}
}

func TestRouter_RequestIDEchoed(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t, auth.AuthModeNone)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health/live", http.NoBody)
	req.Header.Set(middleware.RequestIDHeader, "trace-abc")
	rec := f.do(req)

	if got := rec.Header().Get(middleware.RequestIDHeader); got != "trace-abc" {
		t.Errorf("%s = %q, want trace-abc", middleware.RequestIDHeader, got)
	}
	resp := decodeResponse(t, rec)
	if resp.Meta == nil || resp.Meta.RequestID != "trace-abc" {
		t.Errorf("meta = %+v", resp.Meta)
	}
}

func TestRouter_GeneratesRequestID(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t, auth.AuthModeNone)
	rec := f.do(httptest.NewRequest(http.MethodGet, "/api/v1/health/live", http.NoBody))

	if rec.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("expected generated request id")
	}
}
