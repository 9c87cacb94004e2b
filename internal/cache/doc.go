// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

// Package cache provides a small thread-safe TTL cache used to hold recent
// provider responses. Expired entries are dropped lazily on Get and in bulk
// by Serve, which runs under the supervisor tree.
package cache
