package models

import "time"

// Request types

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type PasswordResetRequest struct {
	Username string `json:"username"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword"`
	Username    string `json:"username"`
	ResetToken  string `json:"resetToken"`
}

type DeleteUserRequest struct {
	Username string `json:"username"`
}

type CastVoteRequest struct {
	CandidateID int64  `json:"candidate_id"`
	Username    string `json:"username"`
}

type AddCandidateRequest struct {
	Name     string `json:"name"`
	Party    string `json:"party"`
	Position string `json:"position"`
}

type DeleteCandidateRequest struct {
	Name     string `json:"name"`
	Position string `json:"position"`
}

// Response types

type LoginResponse struct {
	Token string `json:"token"`
}

type PasswordResetResponse struct {
	ResetToken string `json:"resetToken"`
	ExpiresIn  string `json:"expires_in"`
}

type AddCandidateResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Domain types

type User struct {
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"` // Never expose in JSON
	Email        string     `json:"email"`
	Role         Role       `json:"role"`
	HasVoted     bool       `json:"has_voted"`
	ResetToken   *string    `json:"-"`
	TokenExpiry  *time.Time `json:"-"`
}

type Candidate struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Party    string `json:"party"`
	Position string `json:"position"`
}

// VoteRecord is the tally row for one candidate
type VoteRecord struct {
	CandidateID int64 `json:"candidate_id"`
	VotesCount  int64 `json:"votes_count"`
}

// Result types

type CandidateResult struct {
	CandidateID int64   `json:"candidate_id"`
	Name        string  `json:"name"`
	Party       string  `json:"party"`
	Position    string  `json:"position"`
	VotesCount  int64   `json:"votes_count"`
	Percentage  float64 `json:"percentage"`
}

// Winner is null-valued until some candidate has a vote
type Winner struct {
	CandidateID *int64  `json:"candidate_id"`
	Name        *string `json:"name"`
	Percentage  float64 `json:"percentage"`
}

type Results struct {
	TotalVotes int64             `json:"total_votes"`
	Candidates []CandidateResult `json:"candidates"`
	Winner     Winner            `json:"winner"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
