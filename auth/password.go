// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"fmt"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLength = 8
	MaxPasswordLength = 64
)

var (
	ErrUsernameFormat   = errors.New("username must start with a capital letter")
	ErrEmailFormat      = errors.New("valid email is required")
	ErrPasswordLength   = fmt.Errorf("password must be between %d and %d characters", MinPasswordLength, MaxPasswordLength)
	ErrPasswordStrength = errors.New("password must include uppercase, lowercase, digit and a special character")
)

var (
	emailPattern   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	specialPattern = regexp.MustCompile(`[!@#$%^&*()_\-=+<>?]`)
)

// HashPassword hashes a password with bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidateUsername requires an ASCII capital first letter
func ValidateUsername(username string) error {
	if username == "" || username[0] < 'A' || username[0] > 'Z' {
		return ErrUsernameFormat
	}
	return nil
}

// ValidateEmail performs a shape check only
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return ErrEmailFormat
	}
	return nil
}

// ValidatePassword enforces length and character-class rules
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength || len(password) > MaxPasswordLength {
		return ErrPasswordLength
	}

	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}

	if !upper || !lower || !digit || !specialPattern.MatchString(password) {
		return ErrPasswordStrength
	}
	return nil
}
