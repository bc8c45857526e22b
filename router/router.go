// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/Harold12002/quick-voting-backend/auth"
	"github.com/Harold12002/quick-voting-backend/cliparse"
	"github.com/Harold12002/quick-voting-backend/handlers"
	"github.com/Harold12002/quick-voting-backend/metrics"
	"github.com/Harold12002/quick-voting-backend/middleware"
	"github.com/Harold12002/quick-voting-backend/models"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) (*http.ServeMux, error) {
	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	mux := http.NewServeMux()

	// Initialize handlers
	userHandler := handlers.NewUserHandler(db, cfg, tokens)
	candidateHandler := handlers.NewCandidateHandler(db, cfg)
	votingHandler := handlers.NewVotingHandler(db, cfg)

	// Gates
	authed := middleware.RequireAuth(tokens)
	canVote := middleware.RequireCapability(models.CapCastVote)
	manageCandidates := middleware.RequireCapability(models.CapManageCandidates)
	manageUsers := middleware.RequireCapability(models.CapManageUsers)
	resetElection := middleware.RequireCapability(models.CapResetElection)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus scrape endpoint
	mux.Handle("GET /metrics", metrics.Handler())

	// Accounts (public)
	mux.HandleFunc("POST /register", middleware.WithLogging(userHandler.Register))
	mux.HandleFunc("POST /login", middleware.WithLogging(userHandler.Login))
	mux.HandleFunc("POST /request-password-reset", middleware.WithLogging(userHandler.RequestPasswordReset))
	mux.HandleFunc("POST /reset-password", middleware.WithLogging(userHandler.ResetPassword))

	// Reads (public)
	mux.HandleFunc("GET /candidates", middleware.WithLogging(candidateHandler.ListCandidates))
	mux.HandleFunc("GET /results", middleware.WithLogging(votingHandler.GetResults))
	mux.HandleFunc("GET /votes/{id}", middleware.WithLogging(votingHandler.GetVotes))

	// Voting (bearer token)
	mux.HandleFunc("POST /vote", middleware.WithLogging(authed(canVote(votingHandler.CastVote))))

	// Administration (bearer token + Admin)
	mux.HandleFunc("POST /addCandidate", middleware.WithLogging(authed(manageCandidates(candidateHandler.AddCandidate))))
	mux.HandleFunc("DELETE /deleteCandidate", middleware.WithLogging(authed(manageCandidates(candidateHandler.DeleteCandidate))))
	mux.HandleFunc("DELETE /deleteUser", middleware.WithLogging(authed(manageUsers(userHandler.DeleteUser))))
	mux.HandleFunc("GET /reset", middleware.WithLogging(authed(resetElection(votingHandler.Reset))))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quick-voting API v1"))
	})

	return mux, nil
}
