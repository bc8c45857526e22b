package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/Harold12002/quick-voting-backend/auth"
)

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	JWTSecret     string
	TokenTTL      time.Duration
	ResetTokenTTL time.Duration
	LogLevel      string
}

// LoadEnvFile loads KEY=VALUE pairs from path into the process environment.
// Variables already set are left alone and a missing file is not an error.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ParseFlags validates flags and fills unset values from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var tokenTTL, resetTTL string

	fs := flag.NewFlagSet("quick-voting", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", "", "JWT signing secret (prefer env)")

	fs.StringVar(&tokenTTL, "token-ttl", "", "Access token lifetime, e.g. 1h")
	fs.StringVar(&resetTTL, "reset-ttl", "", "Password reset token lifetime, e.g. 1h")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8000 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	// Secrets - MUST be provided
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = os.Getenv("JWT_SECRET")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET required")
	}
	if len(cfg.JWTSecret) < auth.MinSecretLength {
		return Config{}, fmt.Errorf("JWT_SECRET must be at least %d bytes", auth.MinSecretLength)
	}

	var err error
	if cfg.TokenTTL, err = parseDuration(tokenTTL, "TOKEN_TTL", time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.ResetTokenTTL, err = parseDuration(resetTTL, "RESET_TOKEN_TTL", time.Hour); err != nil {
		return Config{}, err
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = os.Getenv("LOG_LEVEL")
		if cfg.LogLevel == "" {
			cfg.LogLevel = "info"
		}
	}

	return cfg, nil
}

func parseDuration(flagValue, envKey string, fallback time.Duration) (time.Duration, error) {
	value := flagValue
	if value == "" {
		value = os.Getenv(envKey)
	}
	if value == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s %q", envKey, value)
	}
	return d, nil
}
