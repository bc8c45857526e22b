// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the voting API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - UserHandler: registration, login, password reset, user deletion
  - CandidateHandler: candidate add, list and delete
  - VotingHandler: ballot casting, tallies, results and election reset

Handlers are created via constructor functions that accept *sql.DB and Config:

	votingHandler := handlers.NewVotingHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db, cfg, tokens)

# Users

	POST /register               → Register (201; 401 duplicate username)
	POST /login                  → Login (returns a bearer token)
	POST /request-password-reset → RequestPasswordReset (returns resetToken)
	POST /reset-password         → ResetPassword
	DELETE /deleteUser           → DeleteUser (Admin)

# Voting Flow

	POST /vote       → CastVote (bearer token; the token's user must match the ballot)
	GET /votes/{id}  → GetVotes
	GET /results     → GetResults
	GET /reset       → Reset (Admin)

Casting errors map to status codes: missing fields 400, already voted 403,
unknown user or candidate 404, anything else 500 with a generic message.

# Candidates

	POST /addCandidate      → AddCandidate (Admin; 409 on duplicate name+position)
	GET /candidates         → ListCandidates (404 when empty)
	DELETE /deleteCandidate → DeleteCandidate (Admin; removes the tally too)

Role checks happen in the router via middleware.RequireAuth and
middleware.RequireCapability, not in the handlers.
*/
package handlers
