// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

package api

import "github.com/tomtom215/moodlight/internal/recommend"

// RecommendationRequest is the body of POST /api/v1/recommendations.
//
// Mood carries no validation: missing, empty, oversized and unknown values
// all resolve to the default genre and video query. Location is bounded
// because it is forwarded to the therapist provider.
type RecommendationRequest struct {
	Mood        string             `json:"mood"`
	UserProfile UserProfileRequest `json:"userProfile"`
}

// UserProfileRequest is the optional caller profile.
type UserProfileRequest struct {
	Location string `json:"location" validate:"omitempty,max=256"`
}

// RecommendationsResponse is the data payload of a successful call.
type RecommendationsResponse struct {
	Recommendations []recommend.Item `json:"recommendations"`
}
