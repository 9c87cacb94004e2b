// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

// Package recommend assembles a mood-driven recommendation list from three
// independent content sources plus a daily affirmation.
//
// # Flow
//
// The Orchestrator maps the caller's mood to per-source query parameters,
// fetches movies, videos and therapists concurrently, waits for all three
// to settle, and concatenates their items in that fixed order before
// appending exactly one affirmation:
//
//	Pending -> Gathering -> Assembled -> Returned
//	Pending -> Rejected   (no caller identity; nothing is fetched)
//
// # Failure Isolation
//
// Every source call runs under its own timeout and panic guard. A failed,
// slow or panicking source contributes an empty slice and a FetchResult
// carrying the cause; siblings are never cancelled. A request where every
// source fails still succeeds with the affirmation alone.
//
// # Items
//
// Item is the wire shape shared by all variants. Sources build items only
// through the Movie, Video, Therapist and Affirmation constructors so that
// per-variant fields (score conventions, URL layout) live in one place.
//
// Relevance scores are source-defined and never compared across sources.
package recommend
