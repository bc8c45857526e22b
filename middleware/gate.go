// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Harold12002/quick-voting-backend/auth"
	"github.com/Harold12002/quick-voting-backend/models"
)

// RequireAuth rejects requests without a valid bearer token and stores the
// verified claims in the request context.
func RequireAuth(tokens *auth.TokenService) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			raw := auth.BearerToken(r.Header.Get("Authorization"))
			if raw == "" {
				ErrorResponse(w, http.StatusUnauthorized, "Access denied, no token provided")
				return
			}

			claims, err := tokens.Parse(raw)
			if err != nil {
				slog.Warn("rejected bearer token",
					"error", err,
					"path", r.URL.Path,
					"request_id", RequestIDFromContext(r.Context()),
				)
				ErrorResponse(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next(w, r.WithContext(ctx))
		}
	}
}

// RequireCapability rejects authenticated callers whose role lacks capability.
// It must run inside RequireAuth.
func RequireCapability(capability models.Capability) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				ErrorResponse(w, http.StatusUnauthorized, "Access denied, no token provided")
				return
			}

			if !claims.Role.Can(capability) {
				slog.Warn("role lacks capability",
					"username", claims.Username,
					"role", claims.Role,
					"capability", capability.String(),
					"request_id", RequestIDFromContext(r.Context()),
				)
				ErrorResponse(w, http.StatusForbidden, "Access denied, insufficient permissions")
				return
			}

			next(w, r)
		}
	}
}

// ClaimsFromContext returns the claims stored by RequireAuth
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok && claims != nil
}
