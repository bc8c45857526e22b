// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides credentials, access tokens and input policy.

# Access Tokens

TokenService signs HS256 JWTs carrying {username, role, exp}:

	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	token, err := tokens.Issue("Alice", models.RoleVoter)
	claims, err := tokens.Parse(token)

The secret comes from configuration and is held by the service; there is
no package-level key. Parse accepts HS256 only, requires an expiry and a
known role, and wraps every failure in ErrInvalidToken.

BearerToken pulls the token out of an Authorization header value.

# Passwords

Passwords are hashed with bcrypt:

	hash, err := auth.HashPassword(password)
	ok := auth.CheckPassword(hash, password)

# Reset Tokens

Password reset tokens are random 24-byte (192-bit) secrets, URL-safe
base64 encoded:

	token, err := auth.GenerateResetToken()

Compare them with TokensEqual (constant time).

# Registration Policy

  - ValidateUsername: first character is A-Z
  - ValidateEmail: local@domain.tld shape
  - ValidatePassword: 8-64 characters with an upper-case letter, a
    lower-case letter, a digit and one of !@#$%^&*()_-=+<>?
*/
package auth
