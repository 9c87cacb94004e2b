// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

package auth

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestParseAuthMode(t *testing.T) {
	tests := []struct {
		in      string
		want    AuthMode
		wantErr bool
	}{
		{"", AuthModeNone, false},
		{"none", AuthModeNone, false},
		{"jwt", AuthModeJWT, false},
		{"basic", "", true},
		{"JWT", "", true},
	}
	for _, tt := range tests {
		got, err := ParseAuthMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAuthMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAuthMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAuthSubjectFromClaims(t *testing.T) {
	if AuthSubjectFromClaims(nil) != nil {
		t.Error("nil claims should give nil subject")
	}

	s := AuthSubjectFromClaims(&Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"}})
	if s.ID != "u1" || s.Username != "u1" {
		t.Errorf("subject = %+v, want username defaulted to id", s)
	}
	if s.ExpiresAt != 0 {
		t.Errorf("ExpiresAt = %d, want 0 without exp claim", s.ExpiresAt)
	}
}

func TestSubjectContext(t *testing.T) {
	ctx := context.Background()
	if _, ok := SubjectFromContext(ctx); ok {
		t.Error("empty context should have no subject")
	}
	if CallerID(ctx) != "" {
		t.Error("CallerID should be empty without subject")
	}

	ctx = ContextWithSubject(ctx, &AuthSubject{ID: "u9"})
	s, ok := SubjectFromContext(ctx)
	if !ok || s.ID != "u9" {
		t.Errorf("SubjectFromContext() = %+v, %v", s, ok)
	}
	if CallerID(ctx) != "u9" {
		t.Errorf("CallerID() = %q, want u9", CallerID(ctx))
	}

	// A typed nil is not a subject
	ctx = ContextWithSubject(context.Background(), nil)
	if _, ok := SubjectFromContext(ctx); ok {
		t.Error("nil subject should not be reported")
	}
}

func TestAnonymousSubject(t *testing.T) {
	s := AnonymousSubject()
	if s.ID != AnonymousID || s.AuthMethod != AuthModeNone {
		t.Errorf("AnonymousSubject() = %+v", s)
	}
}
