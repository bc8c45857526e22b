// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Harold12002/quick-voting-backend/election"
	"github.com/Harold12002/quick-voting-backend/middleware"
)

// electionStatus maps election errors to a status code and a short client
// message. Unclassified errors become a generic 500.
var electionStatus = []struct {
	err     error
	status  int
	message string
}{
	{election.ErrInvalidInput, http.StatusBadRequest, "Invalid input"},
	{election.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{election.ErrAlreadyVoted, http.StatusForbidden, "You have already cast your vote"},
	{election.ErrCandidateNotFound, http.StatusNotFound, "Candidate not found"},
	{election.ErrCandidateExists, http.StatusConflict, "Candidate already exists"},
	{election.ErrNoVoteRecord, http.StatusNotFound, "Candidate not found in votes table"},
}

// writeElectionError writes the response for err and logs anything that
// is not an expected outcome.
func writeElectionError(w http.ResponseWriter, r *http.Request, err error, op string) {
	for _, e := range electionStatus {
		if errors.Is(err, e.err) {
			middleware.ErrorResponse(w, e.status, e.message)
			return
		}
	}

	slog.Error(op+" failed",
		"error", err,
		"request_id", middleware.RequestIDFromContext(r.Context()),
	)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
}
