// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/Harold12002/quick-voting-backend/cliparse"
	"github.com/Harold12002/quick-voting-backend/election"
	"github.com/Harold12002/quick-voting-backend/middleware"
	"github.com/Harold12002/quick-voting-backend/models"
)

type CandidateHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewCandidateHandler(db *sql.DB, cfg cliparse.Config) *CandidateHandler {
	return &CandidateHandler{db: db, cfg: cfg}
}

// AddCandidate handles POST /addCandidate (Admin)
func (h *CandidateHandler) AddCandidate(w http.ResponseWriter, r *http.Request) {
	var req models.AddCandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" || req.Party == "" || req.Position == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid input, fill in all fields")
		return
	}

	id, err := election.AddCandidate(h.db, req.Name, req.Party, req.Position)
	if err != nil {
		writeElectionError(w, r, err, "add candidate")
		return
	}

	slog.Info("candidate added", "candidate_id", id, "name", req.Name, "position", req.Position)

	middleware.JSONResponse(w, http.StatusCreated, models.AddCandidateResponse{
		ID:      id,
		Message: "Candidate added successfully",
	})
}

// ListCandidates handles GET /candidates
func (h *CandidateHandler) ListCandidates(w http.ResponseWriter, r *http.Request) {
	candidates, err := election.ListCandidates(h.db)
	if err != nil {
		writeElectionError(w, r, err, "list candidates")
		return
	}

	if len(candidates) == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "No candidates found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, candidates)
}

// DeleteCandidate handles DELETE /deleteCandidate (Admin)
func (h *CandidateHandler) DeleteCandidate(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteCandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" || req.Position == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Provide name and position to delete")
		return
	}

	if err := election.DeleteCandidate(h.db, req.Name, req.Position); err != nil {
		writeElectionError(w, r, err, "delete candidate")
		return
	}

	slog.Info("candidate deleted", "name", req.Name, "position", req.Position)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Candidate successfully deleted",
	})
}
