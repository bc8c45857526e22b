// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dbType string) error {
	idColumn, ok := idColumns[dbType]
	if !ok {
		return fmt.Errorf("unsupported database type %q", dbType)
	}

	_, err := db.Exec(fmt.Sprintf(schema, idColumn))
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Store-assigned candidate IDs differ per dialect; everything else is shared.
var idColumns = map[string]string{
	TypePostgres: "BIGSERIAL PRIMARY KEY",
	TypeSQLite:   "INTEGER PRIMARY KEY AUTOINCREMENT",
}

const schema = `
-- Users
CREATE TABLE IF NOT EXISTS users (
    username TEXT PRIMARY KEY,
    password_hash TEXT NOT NULL,
    email TEXT NOT NULL,
    role TEXT NOT NULL DEFAULT 'Voter' CHECK (role IN ('Admin', 'Voter')),
    has_voted BOOLEAN NOT NULL DEFAULT FALSE,
    reset_token TEXT,
    token_expiry TIMESTAMP,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Candidates
CREATE TABLE IF NOT EXISTS candidates (
    id %s,
    name TEXT NOT NULL,
    party TEXT NOT NULL,
    position TEXT NOT NULL,
    UNIQUE (name, position)
);

-- Tallies: one row per candidate, created on first vote
CREATE TABLE IF NOT EXISTS votes (
    candidate_id BIGINT NOT NULL UNIQUE REFERENCES candidates(id),
    votes_count BIGINT NOT NULL DEFAULT 0 CHECK (votes_count >= 0),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`
