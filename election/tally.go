// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"database/sql"
	"fmt"
	"math"

	"github.com/Harold12002/quick-voting-backend/models"
)

// ComputeResults tabulates every candidate against the stored tallies.
//
// Candidates are read in ascending id order, so a tie between leaders goes
// to the candidate with the lowest id.
func ComputeResults(db *sql.DB) (models.Results, error) {
	rows, err := db.Query(`
		SELECT c.id, c.name, c.party, c.position, COALESCE(v.votes_count, 0)
		FROM candidates c
		LEFT JOIN votes v ON c.id = v.candidate_id
		ORDER BY c.id
	`)
	if err != nil {
		return models.Results{}, fmt.Errorf("failed to query candidate tallies: %w", err)
	}

	candidates := []models.CandidateResult{}
	for rows.Next() {
		var c models.CandidateResult
		if err := rows.Scan(&c.CandidateID, &c.Name, &c.Party, &c.Position, &c.VotesCount); err != nil {
			rows.Close()
			return models.Results{}, fmt.Errorf("failed to scan candidate tally: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return models.Results{}, fmt.Errorf("failed to read candidate tallies: %w", err)
	}
	rows.Close()

	// Total comes from the tally table on its own; candidates without a
	// row contribute nothing.
	var total int64
	err = db.QueryRow(`SELECT COALESCE(SUM(votes_count), 0) FROM votes`).Scan(&total)
	if err != nil {
		return models.Results{}, fmt.Errorf("failed to sum votes: %w", err)
	}

	return Tabulate(candidates, total), nil
}

// Tabulate fills in percentages and picks the winner.
//
// Candidates are visited in the given order; a later candidate replaces the
// current winner only with strictly more votes, so the first-seen candidate
// wins a tie. With no votes at all the winner stays the empty placeholder.
func Tabulate(candidates []models.CandidateResult, totalVotes int64) models.Results {
	results := models.Results{
		TotalVotes: totalVotes,
		Candidates: make([]models.CandidateResult, len(candidates)),
	}

	var leader *models.CandidateResult
	for i, c := range candidates {
		c.Percentage = Percentage(c.VotesCount, totalVotes)
		results.Candidates[i] = c

		// Compare counts rather than rounded percentages so equal counts
		// always tie.
		if c.VotesCount > 0 && (leader == nil || c.VotesCount > leader.VotesCount) {
			leader = &results.Candidates[i]
		}
	}

	if leader != nil {
		id, name := leader.CandidateID, leader.Name
		results.Winner = models.Winner{
			CandidateID: &id,
			Name:        &name,
			Percentage:  leader.Percentage,
		}
	}

	return results
}

// Percentage returns votes/total*100 rounded to two decimals, or 0 when
// there are no votes.
func Percentage(votes, total int64) float64 {
	if total <= 0 {
		return 0
	}
	p := float64(votes) / float64(total) * 100
	return math.Round(p*100) / 100
}
