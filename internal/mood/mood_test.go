// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

package mood

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestGenreFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		signal Signal
		want   GenreID
	}{
		{Sad, GenreComedy},
		{VerySad, GenreComedy},
		{Anxious, GenreDrama},
		{Stressed, GenreDrama},
		{Happy, GenreAdventure},
		{VeryHappy, GenreAdventure},
		{Calm, GenreDocumentary},
		{Tired, DefaultGenre},
		{"unknown_value", DefaultGenre},
		{"", DefaultGenre},
		{"Anxious", DefaultGenre},
	}

	for _, tt := range tests {
		t.Run(string(tt.signal), func(t *testing.T) {
			t.Parallel()
			if got := GenreFor(tt.signal); got != tt.want {
				t.Errorf("GenreFor(%q) = %d, want %d", tt.signal, got, tt.want)
			}
		})
	}
}

func TestVideoQueryFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		signal Signal
		want   string
	}{
		{Anxious, "calming meditation anxiety relief"},
		{Stressed, "stress relief breathing exercise"},
		{Sad, "motivational uplifting"},
		{Tired, "energizing morning yoga"},
		{VerySad, DefaultVideoQuery},
		{Happy, DefaultVideoQuery},
		{VeryHappy, DefaultVideoQuery},
		{Calm, DefaultVideoQuery},
		{"unknown_value", DefaultVideoQuery},
		{"", DefaultVideoQuery},
	}

	for _, tt := range tests {
		t.Run(string(tt.signal), func(t *testing.T) {
			t.Parallel()
			if got := VideoQueryFor(tt.signal); got != tt.want {
				t.Errorf("VideoQueryFor(%q) = %q, want %q", tt.signal, got, tt.want)
			}
		})
	}
}

// The two tables do not share a key set; a signal can be mapped in one and
// fall through in the other.
func TestTablesAreIndependent(t *testing.T) {
	t.Parallel()

	if VideoQueryFor(Calm) != DefaultVideoQuery || GenreFor(Calm) == DefaultGenre {
		t.Error("calm should have a genre entry but default video query")
	}
	if GenreFor(Tired) != DefaultGenre || VideoQueryFor(Tired) == DefaultVideoQuery {
		t.Error("tired should have a video query entry but default genre")
	}
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	if DefaultGenre != 35 {
		t.Errorf("DefaultGenre = %d, want 35 (Comedy)", DefaultGenre)
	}
	if DefaultGenre.String() != "Comedy" {
		t.Errorf("DefaultGenre.String() = %q, want Comedy", DefaultGenre.String())
	}
	if DefaultVideoQuery != "guided meditation mindfulness" {
		t.Errorf("DefaultVideoQuery = %q", DefaultVideoQuery)
	}
	if GenreID(7).String() != "Unknown" {
		t.Errorf("unmapped genre should stringify as Unknown")
	}
}

func TestKnownSignalsAreTotal(t *testing.T) {
	t.Parallel()

	for _, s := range Known() {
		if GenreFor(s) == 0 {
			t.Errorf("GenreFor(%q) returned zero value", s)
		}
		if VideoQueryFor(s) == "" {
			t.Errorf("VideoQueryFor(%q) returned empty", s)
		}
	}
}

func TestSignalForLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		signal Signal
		want   string
	}{
		{"empty", "", ""},
		{"known", Anxious, "anxious"},
		{"at limit", Signal(strings.Repeat("a", 64)), strings.Repeat("a", 64)},
		{"over limit", Signal(strings.Repeat("a", 65)), strings.Repeat("a", 64) + "..."},
		// 63 ASCII bytes then a 3-byte rune straddling the limit.
		{"multibyte boundary", Signal(strings.Repeat("a", 63) + "☀☀"), strings.Repeat("a", 63) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.signal.ForLog()
			if got != tt.want {
				t.Errorf("ForLog() = %q, want %q", got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("ForLog() = %q is not valid UTF-8", got)
			}
		})
	}
}
