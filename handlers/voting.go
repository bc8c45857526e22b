// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/Harold12002/quick-voting-backend/cliparse"
	"github.com/Harold12002/quick-voting-backend/election"
	"github.com/Harold12002/quick-voting-backend/metrics"
	"github.com/Harold12002/quick-voting-backend/middleware"
	"github.com/Harold12002/quick-voting-backend/models"
)

type VotingHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewVotingHandler(db *sql.DB, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{db: db, cfg: cfg}
}

// CastVote handles POST /vote
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.CandidateID <= 0 || req.Username == "" {
		metrics.RecordBallot(metrics.OutcomeInvalid)
		middleware.ErrorResponse(w, http.StatusBadRequest, "Candidate ID and username are required")
		return
	}

	// A token only casts its own ballot
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok || claims.Username != req.Username {
		metrics.RecordBallot(metrics.OutcomeForbidden)
		middleware.ErrorResponse(w, http.StatusForbidden, "You can only cast your own vote")
		return
	}

	if err := election.CastVote(h.db, req.CandidateID, req.Username); err != nil {
		metrics.RecordBallot(ballotOutcome(err))
		writeElectionError(w, r, err, "cast vote")
		return
	}
	metrics.RecordBallot(metrics.OutcomeAccepted)

	slog.Info("vote cast", "candidate_id", req.CandidateID, "username", req.Username)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Your vote has been cast successfully",
	})
}

// GetVotes handles GET /votes/{id}
func (h *VotingHandler) GetVotes(w http.ResponseWriter, r *http.Request) {
	candidateID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || candidateID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	rec, err := election.GetVoteRecord(h.db, candidateID)
	if err != nil {
		writeElectionError(w, r, err, "get votes")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, rec)
}

// GetResults handles GET /results
func (h *VotingHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	results, err := election.ComputeResults(h.db)
	if err != nil {
		writeElectionError(w, r, err, "compute results")
		return
	}

	winner := ""
	if results.Winner.Name != nil {
		winner = *results.Winner.Name
	}
	slog.Info("results computed",
		"total_votes", humanize.Comma(results.TotalVotes),
		"candidates", len(results.Candidates),
		"winner", winner,
	)

	middleware.JSONResponse(w, http.StatusOK, results)
}

// Reset handles GET /reset (Admin)
func (h *VotingHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := election.Reset(h.db); err != nil {
		writeElectionError(w, r, err, "reset election")
		return
	}

	metrics.RecordReset()

	admin, _ := middleware.ClaimsFromContext(r.Context())
	slog.Info("voting records reset", "by", adminName(admin))

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Voting records have been successfully reset",
	})
}

func ballotOutcome(err error) string {
	switch {
	case errors.Is(err, election.ErrInvalidInput):
		return metrics.OutcomeInvalid
	case errors.Is(err, election.ErrUserNotFound):
		return metrics.OutcomeUserNotFound
	case errors.Is(err, election.ErrAlreadyVoted):
		return metrics.OutcomeAlreadyVoted
	case errors.Is(err, election.ErrCandidateNotFound):
		return metrics.OutcomeCandidateNotFound
	default:
		return metrics.OutcomeFailed
	}
}
