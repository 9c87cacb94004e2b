// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// JWTAuthenticator implements Authenticator for bearer tokens.
type JWTAuthenticator struct {
	manager     *JWTManager
	tokenCookie string
}

var _ Authenticator = (*JWTAuthenticator)(nil)

// NewJWTAuthenticator creates a new JWT authenticator.
func NewJWTAuthenticator(manager *JWTManager) *JWTAuthenticator {
	return &JWTAuthenticator{
		manager:     manager,
		tokenCookie: "token",
	}
}

// Authenticate extracts and validates the JWT from the request.
func (a *JWTAuthenticator) Authenticate(_ context.Context, r *http.Request) (*AuthSubject, error) {
	tokenStr := a.extractToken(r)
	if tokenStr == "" {
		return nil, ErrNoCredentials
	}

	claims, err := a.manager.ValidateToken(tokenStr)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredCredentials
		}
		return nil, ErrInvalidCredentials
	}

	return AuthSubjectFromClaims(claims), nil
}

// Name returns the authenticator name.
func (a *JWTAuthenticator) Name() string {
	return string(AuthModeJWT)
}

// extractToken extracts the bearer token from Authorization header or cookie.
func (a *JWTAuthenticator) extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			token := strings.TrimSpace(parts[1])
			if token != "" {
				return token
			}
		}
	}

	cookie, err := r.Cookie(a.tokenCookie)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}

	return ""
}
