// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

package recommend

import "errors"

var (
	// ErrUnauthenticated is returned before any source is contacted when the
	// request carries no caller identity.
	ErrUnauthenticated = errors.New("unauthenticated: caller identity required")

	// ErrInternal wraps anything that escapes the per-source isolation
	// boundary. Callers should surface only a generic message.
	ErrInternal = errors.New("internal error assembling recommendations")

	// ErrNilSource is returned by NewOrchestrator when a source slot is empty.
	ErrNilSource = errors.New("recommendation source is nil")
)
