// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Connections

Open connects to PostgreSQL (github.com/lib/pq) or SQLite
(modernc.org/sqlite, pure Go):

	conn, err := db.Open(db.TypePostgres, "postgres://...")
	conn, err := db.Open(db.TypeSQLite, "file:votes.db")

All queries in the application use $N placeholders, which both drivers
accept.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables.

# Tables

  - users: credentials, role, has_voted flag, password reset token
  - candidates: store-assigned id, unique (name, position)
  - votes: one tally row per candidate, created on the first vote

# Relationships

	candidates 1──0..1 votes

votes.candidate_id is UNIQUE, which is what the vote upsert's
ON CONFLICT clause targets. The foreign key has no cascade: tally rows
must be removed before their candidate.

# Constraint Errors

IsUniqueViolation recognises duplicate-key errors from both drivers so
handlers can answer 409/401 instead of 500 when two requests race on the
same natural key.
*/
package db
