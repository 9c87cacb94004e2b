// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

/*
Package auth provides caller authentication for the HTTP API.

Key Components:

  - JWTManager: HS256 token generation and validation (golang-jwt/jwt/v5)
  - JWTAuthenticator: extracts a bearer token from the Authorization header
    or the "token" cookie and resolves it to an AuthSubject
  - Middleware: attaches the resolved AuthSubject to the request context

Authentication Modes (AUTH_MODE):

 1. jwt (default): every request must carry a valid token. Requests without
    one reach the handler with no subject and are rejected there as
    unauthenticated.
 2. none: every request is attributed to the anonymous subject. Rejected
    at config validation when ENVIRONMENT=production.

Usage Example:

	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
	    return err
	}
	mw := auth.NewMiddleware(auth.AuthModeJWT, auth.NewJWTAuthenticator(jwtManager))
	r.With(mw.Authenticate).Post("/api/v1/recommendations", handler)

	// In the handler
	subject, ok := auth.SubjectFromContext(r.Context())
*/
package auth
