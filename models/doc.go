// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterRequest: username, password, email, role
  - LoginRequest: username, password
  - PasswordResetRequest: username
  - ResetPasswordRequest: newPassword, username, resetToken
  - DeleteUserRequest: username
  - CastVoteRequest: candidate_id, username
  - AddCandidateRequest: name, party, position
  - DeleteCandidateRequest: name, position

# Response Types

  - LoginResponse: token
  - PasswordResetResponse: resetToken, expires_in
  - AddCandidateResponse: id, message
  - MessageResponse: message
  - ErrorResponse: error, message

# Domain Types

  - User: account with role and has_voted flag
  - Candidate: store-assigned id plus (name, position) natural key
  - VoteRecord: tally row for one candidate
  - Results, CandidateResult, Winner: tabulated election results

# Roles

Roles form a closed set checked by capability rather than by name:

	RoleAdmin.Can(CapResetElection) // true
	RoleVoter.Can(CapResetElection) // false

ParseRole rejects anything other than "Admin" and "Voter".
*/
package models
