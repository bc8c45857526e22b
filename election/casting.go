// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// CastVote records one vote for candidateID on behalf of username.
//
// Preconditions are checked in order and fail fast: input present, user
// exists, user has not voted, candidate exists. An already-voted user is
// rejected before the candidate is looked up.
//
// The tally upsert and the has_voted flip run in one transaction. The flip
// only matches a row whose flag is still false, so when two requests for
// the same user race past the precondition check the second one updates
// nothing, rolls back its tally increment and gets ErrAlreadyVoted.
func CastVote(db *sql.DB, candidateID int64, username string) error {
	if candidateID <= 0 || username == "" {
		return ErrInvalidInput
	}

	var hasVoted bool
	err := db.QueryRow(`
		SELECT has_voted FROM users WHERE username = $1
	`, username).Scan(&hasVoted)
	if err == sql.ErrNoRows {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to query user: %w", err)
	}

	if hasVoted {
		return ErrAlreadyVoted
	}

	var exists bool
	err = db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM candidates WHERE id = $1)
	`, candidateID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to query candidate: %w", err)
	}
	if !exists {
		return ErrCandidateNotFound
	}

	err = recordVote(db, candidateID, username)
	if errors.Is(err, ErrAlreadyVoted) {
		return err
	}
	if err != nil {
		slog.Error("vote transaction failed", "error", err, "candidate_id", candidateID, "username", username)
		return fmt.Errorf("%w: %v", ErrTransactionFailed, err)
	}

	return nil
}

func recordVote(db *sql.DB, candidateID int64, username string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Increment the tally, creating the row on the candidate's first vote
	_, err = tx.Exec(`
		INSERT INTO votes (candidate_id, votes_count, created_at)
		VALUES ($1, 1, $2)
		ON CONFLICT (candidate_id) DO UPDATE SET votes_count = votes.votes_count + 1
	`, candidateID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to update tally: %w", err)
	}

	res, err := tx.Exec(`
		UPDATE users SET has_voted = TRUE WHERE username = $1 AND has_voted = FALSE
	`, username)
	if err != nil {
		return fmt.Errorf("failed to mark user as voted: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n != 1 {
		return ErrAlreadyVoted
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
