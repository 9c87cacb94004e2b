// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

// Package logging wraps zerolog behind a process-wide logger.
//
// Call Init once from main; until then a json logger at info level writes to
// stderr. Request handlers log through Ctx so every line carries the
// request_id and correlation_id placed on the context by the request ID
// middleware:
//
//	logging.Ctx(ctx).Warn().Str("source", "tmdb").Err(err).Msg("Source fetch failed")
//
// Components that are constructed once take a zerolog.Logger built with
// WithComponent. Libraries that only speak log/slog (the suture supervisor
// hook) get NewSlogLogger.
//
// Always terminate a chain with Msg or Send; an unterminated event is dropped.
package logging
