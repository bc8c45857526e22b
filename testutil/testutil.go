// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Harold12002/quick-voting-backend/auth"
	"github.com/Harold12002/quick-voting-backend/cliparse"
	"github.com/Harold12002/quick-voting-backend/db"
	"github.com/Harold12002/quick-voting-backend/models"
)

// TestSecret signs tokens in tests
const TestSecret = "test-secret-key-at-least-32-chars-long"

// TestPassword satisfies the registration password policy
const TestPassword = "Secret#123"

// SetupTestDB creates a fresh in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn, db.TypeSQLite); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          8000,
		DatabaseURL:   ":memory:",
		DatabaseType:  db.TypeSQLite,
		JWTSecret:     TestSecret,
		TokenTTL:      time.Hour,
		ResetTokenTTL: time.Hour,
		LogLevel:      "error",
	}
}

// GetTestTokens returns a token service matching GetTestConfig
func GetTestTokens(t *testing.T) *auth.TokenService {
	t.Helper()

	tokens, err := auth.NewTokenService(TestSecret, time.Hour)
	if err != nil {
		t.Fatalf("Failed to create token service: %v", err)
	}
	return tokens
}

// CreateTestUser inserts a user whose password is TestPassword
func CreateTestUser(t *testing.T, conn *sql.DB, username string, role models.Role) {
	t.Helper()

	// MinCost keeps the suite fast; production hashes use DefaultCost
	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO users (username, password_hash, email, role, has_voted)
		VALUES ($1, $2, $3, $4, FALSE)
	`, username, string(hash), username+"@example.com", string(role))
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
}

// CreateTestCandidate inserts a candidate and returns its id
func CreateTestCandidate(t *testing.T, conn *sql.DB, name, party, position string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO candidates (name, party, position)
		VALUES ($1, $2, $3)
		RETURNING id
	`, name, party, position).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test candidate: %v", err)
	}

	return id
}

// SetTestVotes writes a tally row directly
func SetTestVotes(t *testing.T, conn *sql.DB, candidateID, count int64) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO votes (candidate_id, votes_count, created_at)
		VALUES ($1, $2, $3)
	`, candidateID, count, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test tally: %v", err)
	}
}

// HasVoted reads a user's has_voted flag
func HasVoted(t *testing.T, conn *sql.DB, username string) bool {
	t.Helper()

	var voted bool
	if err := conn.QueryRow(`SELECT has_voted FROM users WHERE username = $1`, username).Scan(&voted); err != nil {
		t.Fatalf("Failed to read has_voted for %s: %v", username, err)
	}
	return voted
}

// TallyRows counts tally rows for a candidate
func TallyRows(t *testing.T, conn *sql.DB, candidateID int64) int {
	t.Helper()

	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM votes WHERE candidate_id = $1`, candidateID).Scan(&n); err != nil {
		t.Fatalf("Failed to count tally rows: %v", err)
	}
	return n
}

// VotesFor returns a candidate's tally, 0 when there is no row
func VotesFor(t *testing.T, conn *sql.DB, candidateID int64) int64 {
	t.Helper()

	var n int64
	err := conn.QueryRow(`SELECT COALESCE(SUM(votes_count), 0) FROM votes WHERE candidate_id = $1`, candidateID).Scan(&n)
	if err != nil {
		t.Fatalf("Failed to read tally: %v", err)
	}
	return n
}

// BearerHeader signs a token for the user and returns request headers carrying it
func BearerHeader(t *testing.T, username string, role models.Role) map[string]string {
	t.Helper()

	token, err := GetTestTokens(t).Issue(username, role)
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}
	return map[string]string{"Authorization": "Bearer " + token}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
