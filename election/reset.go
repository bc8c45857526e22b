// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Reset clears every tally and every voter's has_voted flag in one
// transaction.
//
// Tally rows are deleted rather than zeroed, which leaves the table in the
// same shape as before the first vote: a missing row means zero votes and
// the next vote recreates it. Calling Reset twice is the same as once.
func Reset(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %v", ErrTransactionFailed, err)
	}
	defer tx.Rollback()

	tallies, err := tx.Exec(`DELETE FROM votes`)
	if err != nil {
		return fmt.Errorf("%w: failed to clear tallies: %v", ErrTransactionFailed, err)
	}

	voters, err := tx.Exec(`UPDATE users SET has_voted = FALSE WHERE has_voted = TRUE`)
	if err != nil {
		return fmt.Errorf("%w: failed to clear voter flags: %v", ErrTransactionFailed, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit transaction: %v", ErrTransactionFailed, err)
	}

	clearedTallies, _ := tallies.RowsAffected()
	clearedVoters, _ := voters.RowsAffected()
	slog.Info("election reset", "tallies_cleared", clearedTallies, "voters_cleared", clearedVoters)

	return nil
}
