// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

// Package mood translates a caller's mood signal into provider query
// parameters. Both lookups are total: any signal without an entry resolves
// to a fixed default. The genre table and the video query table are
// independent and intentionally cover different signals.
package mood

import "unicode/utf8"

// maxLoggedLength bounds how much of a signal reaches the logs.
const maxLoggedLength = 64

// Signal is the caller-supplied mood key. Matching is exact and
// case-sensitive; unknown values are valid and take the default branch.
type Signal string

const (
	Sad       Signal = "sad"
	VerySad   Signal = "verySad"
	Anxious   Signal = "anxious"
	Stressed  Signal = "stressed"
	Happy     Signal = "happy"
	VeryHappy Signal = "veryHappy"
	Calm      Signal = "calm"
	Tired     Signal = "tired"
)

// ForLog returns s cut to at most maxLoggedLength bytes on a rune boundary.
// Signals are caller-controlled and unbounded.
func (s Signal) ForLog() string {
	if len(s) <= maxLoggedLength {
		return string(s)
	}
	cut := maxLoggedLength
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return string(s[:cut]) + "..."
}

// GenreID is a TMDB movie genre code.
type GenreID int

const (
	GenreAdventure   GenreID = 12
	GenreDrama       GenreID = 18
	GenreComedy      GenreID = 35
	GenreDocumentary GenreID = 99
)

const (
	// DefaultGenre applies to every signal absent from the genre table.
	DefaultGenre = GenreComedy

	// DefaultVideoQuery applies to every signal absent from the query table.
	DefaultVideoQuery = "guided meditation mindfulness"
)

// Known lists every named signal.
func Known() []Signal {
	return []Signal{Sad, VerySad, Anxious, Stressed, Happy, VeryHappy, Calm, Tired}
}

// GenreFor returns the movie genre for s. Tired has no genre entry.
func GenreFor(s Signal) GenreID {
	switch s {
	case Sad, VerySad:
		return GenreComedy
	case Anxious, Stressed:
		return GenreDrama
	case Happy, VeryHappy:
		return GenreAdventure
	case Calm:
		return GenreDocumentary
	default:
		return DefaultGenre
	}
}

// VideoQueryFor returns the video search phrase for s. Calm, happy and the
// "very" variants have no query entry.
func VideoQueryFor(s Signal) string {
	switch s {
	case Anxious:
		return "calming meditation anxiety relief"
	case Stressed:
		return "stress relief breathing exercise"
	case Sad:
		return "motivational uplifting"
	case Tired:
		return "energizing morning yoga"
	default:
		return DefaultVideoQuery
	}
}

// String returns the genre's display name, used in logs.
func (g GenreID) String() string {
	switch g {
	case GenreAdventure:
		return "Adventure"
	case GenreDrama:
		return "Drama"
	case GenreComedy:
		return "Comedy"
	case GenreDocumentary:
		return "Documentary"
	default:
		return "Unknown"
	}
}
