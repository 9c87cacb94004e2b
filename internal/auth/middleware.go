// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

package auth

import (
	"errors"
	"net/http"

	"github.com/tomtom215/moodlight/internal/logging"
)

// Middleware resolves the caller for each request.
//
// It never rejects a request itself: a missing or invalid token leaves the
// context without a subject and the handler reports the caller as
// unauthenticated. This keeps the error envelope in one place.
type Middleware struct {
	mode          AuthMode
	authenticator Authenticator
}

// NewMiddleware creates the middleware. authenticator is ignored in
// AuthModeNone; in any other mode a nil authenticator resolves nobody.
func NewMiddleware(mode AuthMode, authenticator Authenticator) *Middleware {
	return &Middleware{mode: mode, authenticator: authenticator}
}

// Authenticate attaches the resolved AuthSubject to the request context.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.mode == AuthModeNone {
			next.ServeHTTP(w, r.WithContext(ContextWithSubject(r.Context(), AnonymousSubject())))
			return
		}
		if m.authenticator == nil {
			next.ServeHTTP(w, r)
			return
		}

		subject, err := m.authenticator.Authenticate(r.Context(), r)
		if err != nil {
			if !errors.Is(err, ErrNoCredentials) {
				logging.Ctx(r.Context()).Debug().
					Err(err).
					Str("authenticator", m.authenticator.Name()).
					Str("remote_addr", r.RemoteAddr).
					Msg("Authentication failed")
			}
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithSubject(r.Context(), subject)))
	})
}
