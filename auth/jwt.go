// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Harold12002/quick-voting-backend/models"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrShortSecret  = errors.New("jwt secret too short")
)

// MinSecretLength matches the HS256 key size.
const MinSecretLength = 32

// Claims is the signed claim set carried by access tokens
type Claims struct {
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 access tokens.
// The secret is copied at construction and never changes.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates a token service for the given secret and lifetime
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if len(secret) < MinSecretLength {
		return nil, ErrShortSecret
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// TTL returns the lifetime of issued tokens
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue signs a token for the user
func (s *TokenService) Issue(username string, role models.Role) (string, error) {
	now := s.now()
	claims := Claims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies the signature, expiry and role of a token
func (s *TokenService) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Username == "" || !claims.Role.Valid() {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
