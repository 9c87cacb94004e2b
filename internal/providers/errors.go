// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

package providers

import "errors"

var (
	// ErrMissingAPIKey is returned by client constructors when no key is configured.
	ErrMissingAPIKey = errors.New("provider api key not configured")

	// ErrSourceDisabled is returned by DisabledSource on every fetch.
	ErrSourceDisabled = errors.New("source disabled")
)
