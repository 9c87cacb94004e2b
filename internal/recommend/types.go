// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

package recommend

import (
	"fmt"
	"strconv"
	"time"

	"github.com/tomtom215/moodlight/internal/mood"
)

// ItemType tags which variant an Item was built from.
type ItemType string

const (
	ItemMovie       ItemType = "movie"
	ItemVideo       ItemType = "video"
	ItemTherapist   ItemType = "therapist"
	ItemAffirmation ItemType = "affirmation"
)

const (
	// VideoRelevance is fixed; the video provider exposes no numeric score.
	VideoRelevance = 8.0

	// AffirmationRelevance is fixed for the synthetic affirmation item.
	AffirmationRelevance = 9.0

	// AffirmationTitle is shown for every affirmation item.
	AffirmationTitle = "Daily Affirmation"
)

// Item is the common wire schema for every recommendation. Optional fields
// are omitted from JSON when empty. IDs are "<type>_<provider id>", so items
// from different providers never collide within one response.
type Item struct {
	ID             string   `json:"id"`
	Type           ItemType `json:"type"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Subtitle       string   `json:"subtitle,omitempty"`
	ImageURL       string   `json:"imageUrl,omitempty"`
	ActionURL      string   `json:"actionUrl,omitempty"`
	RelevanceScore float64  `json:"relevanceScore"`
}

func itemID(typ ItemType, id string) string {
	return string(typ) + "_" + id
}

// Movie is a discovered film. ImageURL and PageURL are already absolute.
type Movie struct {
	ID          int64
	Title       string
	Overview    string
	ImageURL    string
	PageURL     string
	VoteAverage float64
}

// Item converts m; the score is the provider's average vote.
func (m Movie) Item() Item {
	return Item{
		ID:             itemID(ItemMovie, strconv.FormatInt(m.ID, 10)),
		Type:           ItemMovie,
		Title:          m.Title,
		Description:    m.Overview,
		ImageURL:       m.ImageURL,
		ActionURL:      m.PageURL,
		RelevanceScore: m.VoteAverage,
	}
}

// Video is a search hit from the video provider.
type Video struct {
	VideoID      string
	Title        string
	Description  string
	ThumbnailURL string
	WatchURL     string
}

func (v Video) Item() Item {
	return Item{
		ID:             itemID(ItemVideo, v.VideoID),
		Type:           ItemVideo,
		Title:          v.Title,
		Description:    v.Description,
		ImageURL:       v.ThumbnailURL,
		ActionURL:      v.WatchURL,
		RelevanceScore: VideoRelevance,
	}
}

// Therapist is a local-business directory listing.
type Therapist struct {
	BusinessID  string
	Name        string
	Address     string
	Rating      float64
	ReviewCount int
	ImageURL    string
	PageURL     string
}

// Item converts t. The description is synthesized from rating and review
// count, e.g. "Rating: 4.5 ⭐ (120 reviews)".
func (t Therapist) Item() Item {
	return Item{
		ID:             itemID(ItemTherapist, t.BusinessID),
		Type:           ItemTherapist,
		Title:          t.Name,
		Subtitle:       t.Address,
		Description:    fmt.Sprintf("Rating: %s ⭐ (%d reviews)", strconv.FormatFloat(t.Rating, 'f', -1, 64), t.ReviewCount),
		ImageURL:       t.ImageURL,
		ActionURL:      t.PageURL,
		RelevanceScore: t.Rating,
	}
}

// Affirmation is the synthetic item appended to every response.
type Affirmation struct {
	At   time.Time
	Text string
}

// Item converts a; the id embeds the same millisecond timestamp that
// selected the text.
func (a Affirmation) Item() Item {
	return Item{
		ID:             itemID(ItemAffirmation, strconv.FormatInt(a.At.UnixMilli(), 10)),
		Type:           ItemAffirmation,
		Title:          AffirmationTitle,
		Description:    a.Text,
		RelevanceScore: AffirmationRelevance,
	}
}

// UserProfile is the caller's minimal profile.
type UserProfile struct {
	Location string `json:"location,omitempty"`
}

// Request is one recommendation call. CallerID is the authenticated subject
// and must be non-empty.
type Request struct {
	CallerID string
	Mood     mood.Signal
	Profile  UserProfile
}

// Response is the assembled result. Recommendations order is movies,
// videos, therapists, then the affirmation.
type Response struct {
	Recommendations []Item `json:"recommendations"`

	// Sources records how each source settled, in merge order.
	Sources []FetchResult `json:"-"`
}

// Stage names the orchestrator's progress through a request.
type Stage string

const (
	StagePending   Stage = "pending"
	StageGathering Stage = "gathering"
	StageAssembled Stage = "assembled"
	StageReturned  Stage = "returned"
	StageRejected  Stage = "rejected"
)
