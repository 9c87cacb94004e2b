// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

package auth

import (
	"context"
	"errors"
	"net/http"
)

// AuthMode represents the authentication strategy.
type AuthMode string

const (
	// AuthModeNone attributes every request to the anonymous subject
	AuthModeNone AuthMode = "none"

	// AuthModeJWT uses JWT Bearer tokens
	AuthModeJWT AuthMode = "jwt"
)

// AnonymousID is the caller id used when AUTH_MODE=none.
const AnonymousID = "anonymous"

// ParseAuthMode converts a string to AuthMode.
func ParseAuthMode(s string) (AuthMode, error) {
	switch s {
	case "none", "":
		return AuthModeNone, nil
	case "jwt":
		return AuthModeJWT, nil
	default:
		return "", errors.New("invalid auth mode: " + s)
	}
}

// String returns the string representation of AuthMode.
func (m AuthMode) String() string {
	return string(m)
}

// Standard authentication errors
var (
	// ErrNoCredentials indicates no credentials were provided.
	ErrNoCredentials = errors.New("no credentials provided")

	// ErrInvalidCredentials indicates credentials were invalid.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrExpiredCredentials indicates credentials have expired.
	ErrExpiredCredentials = errors.New("credentials expired")
)

// Authenticator defines the interface for authentication providers.
type Authenticator interface {
	// Authenticate extracts and validates credentials from the request.
	Authenticate(ctx context.Context, r *http.Request) (*AuthSubject, error)

	// Name returns the authenticator's name for logging.
	Name() string
}

// AuthSubject represents an authenticated caller.
type AuthSubject struct {
	// ID is the stable caller identifier (JWT "sub").
	ID string `json:"id"`

	// Username is the human-readable name, if the token carried one.
	Username string `json:"username,omitempty"`

	// AuthMethod indicates how the subject was authenticated.
	AuthMethod AuthMode `json:"auth_method"`

	// IssuedAt and ExpiresAt are Unix seconds; zero when not applicable.
	IssuedAt  int64 `json:"issued_at,omitempty"`
	ExpiresAt int64 `json:"expires_at,omitempty"`
}

// AnonymousSubject is attached to every request when AUTH_MODE=none.
func AnonymousSubject() *AuthSubject {
	return &AuthSubject{ID: AnonymousID, Username: AnonymousID, AuthMethod: AuthModeNone}
}

// AuthSubjectFromClaims creates an AuthSubject from validated JWT claims.
func AuthSubjectFromClaims(claims *Claims) *AuthSubject {
	if claims == nil {
		return nil
	}

	subject := &AuthSubject{
		ID:         claims.Subject,
		Username:   claims.Username,
		AuthMethod: AuthModeJWT,
	}
	if subject.Username == "" {
		subject.Username = claims.Subject
	}
	if claims.ExpiresAt != nil {
		subject.ExpiresAt = claims.ExpiresAt.Unix()
	}
	if claims.IssuedAt != nil {
		subject.IssuedAt = claims.IssuedAt.Unix()
	}

	return subject
}

type contextKey string

const subjectContextKey contextKey = "auth-subject"

// ContextWithSubject returns ctx carrying subject.
func ContextWithSubject(ctx context.Context, subject *AuthSubject) context.Context {
	return context.WithValue(ctx, subjectContextKey, subject)
}

// SubjectFromContext returns the authenticated subject, if any.
func SubjectFromContext(ctx context.Context) (*AuthSubject, bool) {
	subject, ok := ctx.Value(subjectContextKey).(*AuthSubject)
	return subject, ok && subject != nil
}

// CallerID returns the subject id from ctx, or "" when unauthenticated.
func CallerID(ctx context.Context) string {
	if subject, ok := SubjectFromContext(ctx); ok {
		return subject.ID
	}
	return ""
}
