// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

package recommend

import "time"

var affirmations = [...]string{
	"You are stronger than you think.",
	"Every day is a new opportunity.",
	"You deserve peace and happiness.",
	"Your feelings are valid.",
	"You are enough, just as you are.",
}

// Affirmations returns a copy of the affirmation list in selection order.
func Affirmations() []string {
	out := make([]string, len(affirmations))
	copy(out, affirmations[:])
	return out
}

// PickAffirmation selects the affirmation for now. The index is the Unix
// millisecond timestamp modulo the list length, so the same instant always
// yields the same item. The distribution is not uniform.
func PickAffirmation(now time.Time) Item {
	ms := now.UnixMilli()
	n := int64(len(affirmations))
	idx := ms % n
	if idx < 0 {
		idx += n
	}
	return Affirmation{At: now, Text: affirmations[idx]}.Item()
}
