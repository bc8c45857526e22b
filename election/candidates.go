// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"database/sql"
	"fmt"

	"github.com/Harold12002/quick-voting-backend/db"
	"github.com/Harold12002/quick-voting-backend/models"
)

// AddCandidate inserts a candidate unless one with the same name and
// position already exists, and returns the store-assigned id.
func AddCandidate(conn *sql.DB, name, party, position string) (int64, error) {
	if name == "" || party == "" || position == "" {
		return 0, ErrInvalidInput
	}

	var exists bool
	err := conn.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM candidates WHERE name = $1 AND position = $2)
	`, name, position).Scan(&exists)
	if err != nil {
		return 0, fmt.Errorf("failed to query candidate: %w", err)
	}
	if exists {
		return 0, ErrCandidateExists
	}

	var id int64
	err = conn.QueryRow(`
		INSERT INTO candidates (name, party, position)
		VALUES ($1, $2, $3)
		RETURNING id
	`, name, party, position).Scan(&id)
	if db.IsUniqueViolation(err) {
		// lost a race with a concurrent insert
		return 0, ErrCandidateExists
	}
	if err != nil {
		return 0, fmt.Errorf("failed to insert candidate: %w", err)
	}

	return id, nil
}

// ListCandidates returns all candidates ordered by id
func ListCandidates(conn *sql.DB) ([]models.Candidate, error) {
	rows, err := conn.Query(`
		SELECT id, name, party, position
		FROM candidates
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	candidates := []models.Candidate{}
	for rows.Next() {
		var c models.Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.Party, &c.Position); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidates: %w", err)
	}

	return candidates, nil
}

// DeleteCandidate removes the candidate identified by name and position
// together with its tally row. The tally goes first because it references
// the candidate.
func DeleteCandidate(conn *sql.DB, name, position string) error {
	if name == "" || position == "" {
		return ErrInvalidInput
	}

	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %v", ErrTransactionFailed, err)
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRow(`
		SELECT id FROM candidates WHERE name = $1 AND position = $2
	`, name, position).Scan(&id)
	if err == sql.ErrNoRows {
		return ErrCandidateNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to query candidate: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM votes WHERE candidate_id = $1`, id); err != nil {
		return fmt.Errorf("%w: failed to delete tally: %v", ErrTransactionFailed, err)
	}

	if _, err := tx.Exec(`DELETE FROM candidates WHERE id = $1`, id); err != nil {
		return fmt.Errorf("%w: failed to delete candidate: %v", ErrTransactionFailed, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit transaction: %v", ErrTransactionFailed, err)
	}

	return nil
}

// GetVoteRecord returns the tally row for a candidate. A candidate that
// has never received a vote has no row and yields ErrNoVoteRecord.
func GetVoteRecord(conn *sql.DB, candidateID int64) (models.VoteRecord, error) {
	var rec models.VoteRecord
	err := conn.QueryRow(`
		SELECT candidate_id, votes_count FROM votes WHERE candidate_id = $1
	`, candidateID).Scan(&rec.CandidateID, &rec.VotesCount)
	if err == sql.ErrNoRows {
		return models.VoteRecord{}, ErrNoVoteRecord
	}
	if err != nil {
		return models.VoteRecord{}, fmt.Errorf("failed to query vote record: %w", err)
	}
	return rec, nil
}
