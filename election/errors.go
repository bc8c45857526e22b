// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrUserNotFound      = errors.New("user not found")
	ErrAlreadyVoted      = errors.New("user has already voted")
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrCandidateExists   = errors.New("candidate already exists")
	ErrNoVoteRecord      = errors.New("no votes recorded for candidate")
	ErrTransactionFailed = errors.New("transaction failed")
)
