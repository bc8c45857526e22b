// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the voting API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints. It builds
the token service from the configured secret, so it fails only when the
secret is too short:

	mux, err := router.NewRouter(db, cfg)

# Endpoints

Health and banner:

	GET /health
	GET /

Accounts (public):

	POST /register               - Create a user
	POST /login                  - Exchange credentials for a bearer token
	POST /request-password-reset - Issue a one-hour reset token
	POST /reset-password         - Set a new password with a reset token

Reads (public):

	GET /candidates  - All candidates
	GET /results     - Totals, percentages and winner
	GET /votes/{id}  - Tally for one candidate

Voting (Authorization: Bearer <token>):

	POST /vote - Cast the caller's single ballot

Administration (bearer token with the Admin role):

	POST   /addCandidate    - Add a candidate
	DELETE /deleteCandidate - Remove a candidate and its tally
	DELETE /deleteUser      - Remove a user
	GET    /reset           - Clear all tallies and voter flags

A missing or invalid token is a 401; a Voter token on an admin route is a
403.
*/
package router
