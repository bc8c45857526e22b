// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8000)
  - DatabaseURL: connection string (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - JWTSecret: HS256 signing secret, at least 32 bytes (required)
  - TokenTTL: access token lifetime (default: 1h)
  - ResetTokenTTL: password reset token lifetime (default: 1h)
  - LogLevel: slog level name (default: info)

# CLI Flags

	-p           Server port
	-d           Database URL
	-t           Database type
	-jwt-secret  JWT signing secret
	-token-ttl   Access token lifetime
	-reset-ttl   Reset token lifetime
	-log-level   Log level

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t
	JWT_SECRET      → -jwt-secret
	TOKEN_TTL       → -token-ttl
	RESET_TOKEN_TTL → -reset-ttl
	LOG_LEVEL       → -log-level

CLI flags take precedence over environment variables. LoadEnvFile reads a
.env file into the environment before parsing; values already exported in
the shell win over the file.

# Example

	if err := cliparse.LoadEnvFile(".env"); err != nil {
		log.Fatal(err)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	// ...
	mux, err := router.NewRouter(conn, cfg)
*/
package cliparse
