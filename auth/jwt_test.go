// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harold12002/quick-voting-backend/models"
)

const testSecret = "test-secret-key-at-least-32-chars-long"

func TestNewTokenService_ShortSecret(t *testing.T) {
	_, err := NewTokenService("short", time.Hour)
	assert.ErrorIs(t, err, ErrShortSecret)
}

func TestIssueAndParse(t *testing.T) {
	svc, err := NewTokenService(testSecret, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		role     models.Role
	}{
		{"admin", "Root", models.RoleAdmin},
		{"voter", "Alice", models.RoleVoter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := svc.Issue(tt.username, tt.role)
			require.NoError(t, err)
			require.NotEmpty(t, token)

			claims, err := svc.Parse(token)
			require.NoError(t, err)
			assert.Equal(t, tt.username, claims.Username)
			assert.Equal(t, tt.role, claims.Role)
			assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
		})
	}
}

func TestParse_Expired(t *testing.T) {
	svc, err := NewTokenService(testSecret, time.Minute)
	require.NoError(t, err)

	issued := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return issued }
	token, err := svc.Issue("Alice", models.RoleVoter)
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_WrongSecret(t *testing.T) {
	issuer, _ := NewTokenService(testSecret, time.Hour)
	verifier, _ := NewTokenService("another-secret-key-at-least-32-chars", time.Hour)

	token, err := issuer.Issue("Alice", models.RoleVoter)
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_RejectsForgedClaims(t *testing.T) {
	svc, _ := NewTokenService(testSecret, time.Hour)

	sign := func(method jwt.SigningMethod, key interface{}, claims jwt.Claims) string {
		t.Helper()
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}
	exp := jwt.NewNumericDate(time.Now().Add(time.Hour))

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"empty", ""},
		{"alg none", sign(jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType,
			Claims{Username: "Eve", Role: models.RoleAdmin, RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp}})},
		{"HS512", sign(jwt.SigningMethodHS512, []byte(testSecret),
			Claims{Username: "Eve", Role: models.RoleAdmin, RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp}})},
		{"no expiry", sign(jwt.SigningMethodHS256, []byte(testSecret),
			Claims{Username: "Eve", Role: models.RoleAdmin})},
		{"unknown role", sign(jwt.SigningMethodHS256, []byte(testSecret),
			Claims{Username: "Eve", Role: "admin", RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp}})},
		{"missing username", sign(jwt.SigningMethodHS256, []byte(testSecret),
			Claims{Role: models.RoleAdmin, RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp}})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Parse(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
