// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-at-least-32-chars-long"

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("TOKEN_TTL", "30m")

	cfg, err := ParseFlags([]string{})
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "postgres", cfg.DatabaseType)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, time.Hour, cfg.ResetTokenTTL)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-jwt-secret", testSecret})
	require.NoError(t, err)

	// CLI should override env
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "sqlite", cfg.DatabaseType)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing database url", []string{"-jwt-secret", testSecret}},
		{"missing secret", []string{"-d", "file:test.db"}},
		{"short secret", []string{"-d", "file:test.db", "-jwt-secret", "short"}},
		{"bad database type", []string{"-d", "x", "-t", "mysql", "-jwt-secret", testSecret}},
		{"bad token ttl", []string{"-d", "x", "-jwt-secret", testSecret, "-token-ttl", "soon"}},
		{"negative reset ttl", []string{"-d", "x", "-jwt-secret", testSecret, "-reset-ttl", "-1h"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DATABASE_URL", "")
			t.Setenv("JWT_SECRET", "")
			_, err := ParseFlags(tt.args)
			assert.Error(t, err)
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("QV_TEST_FROM_FILE=loaded\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("QV_TEST_FROM_FILE") })

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "loaded", os.Getenv("QV_TEST_FROM_FILE"))
}

func TestLoadEnvFile_Missing(t *testing.T) {
	err := LoadEnvFile(filepath.Join(t.TempDir(), "does-not-exist.env"))
	assert.NoError(t, err)
}
