// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database types
const (
	TypePostgres = "postgres"
	TypeSQLite   = "sqlite"
)

// Open connects to the database and verifies the connection.
//
// SQLite connections are limited to a single open connection so that
// transactions from concurrent requests queue up instead of failing with
// SQLITE_BUSY, and foreign keys are switched on for that connection.
func Open(dbType, url string) (*sql.DB, error) {
	switch dbType {
	case TypePostgres, TypeSQLite:
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(dbType, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dbType, err)
	}

	if dbType == TypeSQLite {
		conn.SetMaxOpenConns(1)
		if _, err := conn.Exec(`PRAGMA foreign_keys = ON`); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return conn, nil
}
