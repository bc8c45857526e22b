// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harold12002/quick-voting-backend/auth"
	"github.com/Harold12002/quick-voting-backend/models"
)

const gateSecret = "gate-test-secret-at-least-32-bytes!!"

func newTokens(t *testing.T, ttl time.Duration) *auth.TokenService {
	t.Helper()
	tokens, err := auth.NewTokenService(gateSecret, ttl)
	require.NoError(t, err)
	return tokens
}

func okHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	w.Write([]byte(claims.Username))
}

func TestRequireAuth(t *testing.T) {
	tokens := newTokens(t, time.Hour)
	handler := RequireAuth(tokens)(okHandler)

	valid, err := tokens.Issue("Alice", models.RoleVoter)
	require.NoError(t, err)

	expired, err := newTokens(t, -time.Minute).Issue("Alice", models.RoleVoter)
	require.NoError(t, err)

	otherKey, err := auth.NewTokenService("another-secret-that-is-32-bytes-long", time.Hour)
	require.NoError(t, err)
	forged, err := otherKey.Issue("Alice", models.RoleAdmin)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"valid token", "Bearer " + valid, http.StatusOK},
		{"lowercase scheme", "bearer " + valid, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"missing scheme", valid, http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
		{"expired token", "Bearer " + expired, http.StatusUnauthorized},
		{"wrong signing key", "Bearer " + forged, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/vote", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			handler(w, req)

			assert.Equal(t, tt.status, w.Code, w.Body.String())
			if tt.status == http.StatusOK {
				assert.Equal(t, "Alice", w.Body.String())
			}
		})
	}
}

func TestRequireCapability(t *testing.T) {
	tokens := newTokens(t, time.Hour)
	handler := RequireAuth(tokens)(RequireCapability(models.CapManageCandidates)(okHandler))

	tests := []struct {
		name   string
		role   models.Role
		status int
	}{
		{"admin allowed", models.RoleAdmin, http.StatusOK},
		{"voter forbidden", models.RoleVoter, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := tokens.Issue("Boss", tt.role)
			require.NoError(t, err)

			req := httptest.NewRequest("POST", "/addCandidate", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()

			handler(w, req)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestRequireCapability_WithoutAuth(t *testing.T) {
	handler := RequireCapability(models.CapResetElection)(okHandler)

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest("GET", "/reset", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestClaimsFromContext_Missing(t *testing.T) {
	_, ok := ClaimsFromContext(httptest.NewRequest("GET", "/", nil).Context())
	assert.False(t, ok)
}
