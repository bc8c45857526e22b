// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the quick-voting API server.

quick-voting runs a single election: users register and log in, admins
manage candidates, each voter casts exactly one ballot, and anyone can read
the running tally and the current winner. Admins can reset the election.

# Starting the Server

The server requires environment variables or CLI flags for configuration.
A .env file in the working directory is loaded first if present:

	JWT_SECRET=... DATABASE_URL=file:voting.db go run .

Or with flags:

	go run . -p 8000 -t postgres -d "postgres://..." -jwt-secret "..."

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite path/DSN or PostgreSQL connection string
  - JWT_SECRET (-jwt-secret): HS256 signing secret, at least 32 bytes

Optional settings:

  - PORT (-p): Server port (default: 8000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - TOKEN_TTL (-token-ttl): Access token lifetime (default: 1h)
  - RESET_TOKEN_TTL (-reset-ttl): Password reset token lifetime (default: 1h)
  - LOG_LEVEL (-log-level): debug, info, warn or error (default: info)

# Architecture

  - election: vote casting, tabulation, reset, candidate lifecycle
  - handlers: HTTP request handlers (users, candidates, voting)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, request IDs, logging, bearer-token gate, JSON helpers
  - models: Request/response types, roles and capabilities
  - auth: JWTs, password hashing and policy, reset tokens
  - db: Connection setup, schema creation, constraint errors
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
