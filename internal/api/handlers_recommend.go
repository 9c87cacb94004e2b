// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/moodlight/internal/auth"
	"github.com/tomtom215/moodlight/internal/logging"
	"github.com/tomtom215/moodlight/internal/mood"
	"github.com/tomtom215/moodlight/internal/recommend"
	"github.com/tomtom215/moodlight/internal/validation"
)

// maxRequestBodySize bounds the recommendation request body.
const maxRequestBodySize = 64 << 10

// Recommendations handles POST /api/v1/recommendations.
//
// The caller must be resolved by the auth middleware; otherwise the request
// is rejected before the body is read and no provider is contacted. Any mood,
// including a missing one, yields a 200.
//
// Success responses use the standard envelope:
//
//	{
//	  "success": true,
//	  "data": {"recommendations": [Item, ...]},
//	  "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 130,
//	           "sources": [{"name": "movies", "ok": true, "items": 3, "duration_ms": 120}, ...]}
//	}
//
// Errors set "success": false and an "error" object with code and message.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	callerID := auth.CallerID(r.Context())
	if callerID == "" {
		rw.Unauthorized("Authentication required")
		return
	}

	var req RecommendationRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rw.BadRequest("Invalid JSON request body")
		return
	}

	if verr := validation.Validate(&req); verr != nil {
		rw.ValidationError(verr.Error(), verr.Details())
		return
	}

	signal := mood.Signal(req.Mood)
	resp, err := h.recommender.Recommend(r.Context(), recommend.Request{
		CallerID: callerID,
		Mood:     signal,
		Profile:  recommend.UserProfile{Location: strings.TrimSpace(req.UserProfile.Location)},
	})
	if err != nil {
		if errors.Is(err, recommend.ErrUnauthenticated) {
			rw.Unauthorized("Authentication required")
			return
		}
		logging.Ctx(r.Context()).Error().Err(err).Str("mood", signal.ForLog()).Msg("Failed to fetch recommendations")
		rw.InternalError("Failed to fetch recommendations")
		return
	}

	rw.SuccessWithMeta(
		RecommendationsResponse{Recommendations: resp.Recommendations},
		&APIMeta{Sources: sourceMeta(resp.Sources)},
	)
}

func sourceMeta(results []recommend.FetchResult) []SourceMeta {
	if len(results) == 0 {
		return nil
	}
	out := make([]SourceMeta, len(results))
	for i, res := range results {
		out[i] = SourceMeta{
			Name:       res.Source,
			OK:         res.OK(),
			Items:      len(res.Items),
			DurationMs: res.Duration.Milliseconds(),
		}
	}
	return out
}
