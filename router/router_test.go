// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harold12002/quick-voting-backend/models"
	"github.com/Harold12002/quick-voting-backend/testutil"
)

func newMux(t *testing.T, db *sql.DB) *http.ServeMux {
	t.Helper()
	mux, err := NewRouter(db, testutil.GetTestConfig())
	require.NoError(t, err)
	return mux
}

func TestNewRouter_ShortSecret(t *testing.T) {
	cfg := testutil.GetTestConfig()
	cfg.JWTSecret = "short"

	_, err := NewRouter(nil, cfg)
	assert.Error(t, err)
}

func TestHealthEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	mux := newMux(t, db)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestRootEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	mux := newMux(t, db)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "quick-voting API v1", w.Body.String())

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/no-such-route", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	mux := newMux(t, db)

	// One routed request so the request counter has a series for it
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/results", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `quickvote_http_requests_total{method="GET",route="GET /results",status="200"}`)
}

func TestMethodNotAllowed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	mux := newMux(t, db)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"GET", "/vote"},
		{"POST", "/reset"},
		{"GET", "/deleteCandidate"},
		{"PUT", "/addCandidate"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
			assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		})
	}
}

func TestGates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	mux := newMux(t, db)
	voter := testutil.BearerHeader(t, "Voter", models.RoleVoter)
	admin := testutil.BearerHeader(t, "Admin", models.RoleAdmin)
	garbage := map[string]string{"Authorization": "Bearer garbage"}

	// Empty bodies reach handlers as 400, proving the gate let them through
	testCases := []struct {
		name           string
		method         string
		path           string
		headers        map[string]string
		expectedStatus int
	}{
		{"vote without token", "POST", "/vote", nil, http.StatusUnauthorized},
		{"vote with bad token", "POST", "/vote", garbage, http.StatusUnauthorized},
		{"vote as voter", "POST", "/vote", voter, http.StatusBadRequest},
		{"vote as admin", "POST", "/vote", admin, http.StatusBadRequest},

		{"add candidate without token", "POST", "/addCandidate", nil, http.StatusUnauthorized},
		{"add candidate as voter", "POST", "/addCandidate", voter, http.StatusForbidden},
		{"add candidate as admin", "POST", "/addCandidate", admin, http.StatusBadRequest},

		{"delete candidate as voter", "DELETE", "/deleteCandidate", voter, http.StatusForbidden},
		{"delete candidate as admin", "DELETE", "/deleteCandidate", admin, http.StatusBadRequest},

		{"delete user without token", "DELETE", "/deleteUser", nil, http.StatusUnauthorized},
		{"delete user as voter", "DELETE", "/deleteUser", voter, http.StatusForbidden},
		{"delete user as admin", "DELETE", "/deleteUser", admin, http.StatusBadRequest},

		{"reset without token", "GET", "/reset", nil, http.StatusUnauthorized},
		{"reset as voter", "GET", "/reset", voter, http.StatusForbidden},
		{"reset as admin", "GET", "/reset", admin, http.StatusOK},

		{"results are public", "GET", "/results", nil, http.StatusOK},
		{"candidates are public", "GET", "/candidates", nil, http.StatusNotFound},
		{"votes are public", "GET", "/votes/1", nil, http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, testutil.MakeRequest(tc.method, tc.path, nil, tc.headers))
			testutil.AssertStatus(t, w, tc.expectedStatus)
		})
	}
}

func TestFullElectionWorkflow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	mux := newMux(t, db)

	do := func(method, path string, body interface{}, headers map[string]string, expected int) *httptest.ResponseRecorder {
		t.Helper()
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest(method, path, body, headers))
		testutil.AssertStatus(t, w, expected)
		return w
	}

	login := func(username, password string) map[string]string {
		t.Helper()
		w := do("POST", "/login", models.LoginRequest{Username: username, Password: password}, nil, http.StatusOK)
		var resp models.LoginResponse
		testutil.AssertJSON(t, w, &resp)
		return map[string]string{"Authorization": "Bearer " + resp.Token}
	}

	// Step 1: Register an admin and two voters
	do("POST", "/register", models.RegisterRequest{Username: "Chair", Password: "Chair#2024", Email: "chair@example.com", Role: "Admin"}, nil, http.StatusCreated)
	do("POST", "/register", models.RegisterRequest{Username: "Alice", Password: "Alice#2024", Email: "alice@example.com", Role: "Voter"}, nil, http.StatusCreated)
	do("POST", "/register", models.RegisterRequest{Username: "Bob", Password: "Bob#20245", Email: "bob@example.com"}, nil, http.StatusCreated)

	admin := login("Chair", "Chair#2024")
	alice := login("Alice", "Alice#2024")
	bob := login("Bob", "Bob#20245")

	// Step 2: Admin adds candidates
	var ids []int64
	for _, c := range []models.AddCandidateRequest{
		{Name: "X", Party: "P", Position: "Pos"},
		{Name: "Y", Party: "Q", Position: "Pos"},
	} {
		w := do("POST", "/addCandidate", c, admin, http.StatusCreated)
		var resp models.AddCandidateResponse
		testutil.AssertJSON(t, w, &resp)
		ids = append(ids, resp.ID)
	}
	do("POST", "/addCandidate", models.AddCandidateRequest{Name: "X", Party: "P", Position: "Pos"}, admin, http.StatusConflict)
	do("POST", "/addCandidate", models.AddCandidateRequest{Name: "Z", Party: "R", Position: "Pos"}, alice, http.StatusForbidden)

	w := do("GET", "/candidates", nil, nil, http.StatusOK)
	var candidates []models.Candidate
	testutil.AssertJSON(t, w, &candidates)
	require.Len(t, candidates, 2)

	// Step 3: Voting
	do("POST", "/vote", models.CastVoteRequest{CandidateID: ids[1], Username: "Alice"}, alice, http.StatusOK)
	do("POST", "/vote", models.CastVoteRequest{CandidateID: ids[0], Username: "Alice"}, alice, http.StatusForbidden)
	do("POST", "/vote", models.CastVoteRequest{CandidateID: ids[0], Username: "Alice"}, bob, http.StatusForbidden)
	do("POST", "/vote", models.CastVoteRequest{CandidateID: ids[1], Username: "Bob"}, bob, http.StatusOK)

	w = do("GET", "/votes/"+strconv.FormatInt(ids[1], 10), nil, nil, http.StatusOK)
	var rec models.VoteRecord
	testutil.AssertJSON(t, w, &rec)
	assert.Equal(t, int64(2), rec.VotesCount)
	do("GET", "/votes/"+strconv.FormatInt(ids[0], 10), nil, nil, http.StatusNotFound)

	// Step 4: Results
	w = do("GET", "/results", nil, nil, http.StatusOK)
	var results models.Results
	testutil.AssertJSON(t, w, &results)
	assert.Equal(t, int64(2), results.TotalVotes)
	require.NotNil(t, results.Winner.Name)
	assert.Equal(t, "Y", *results.Winner.Name)
	assert.Equal(t, 100.0, results.Winner.Percentage)

	// Step 5: Reset and vote again
	do("GET", "/reset", nil, alice, http.StatusForbidden)
	do("GET", "/reset", nil, admin, http.StatusOK)

	w = do("GET", "/results", nil, nil, http.StatusOK)
	results = models.Results{}
	testutil.AssertJSON(t, w, &results)
	assert.Equal(t, int64(0), results.TotalVotes)
	assert.Nil(t, results.Winner.Name)

	do("POST", "/vote", models.CastVoteRequest{CandidateID: ids[0], Username: "Alice"}, alice, http.StatusOK)

	// Step 6: Cleanup
	do("DELETE", "/deleteCandidate", models.DeleteCandidateRequest{Name: "X", Position: "Pos"}, admin, http.StatusOK)
	do("GET", "/votes/"+strconv.FormatInt(ids[0], 10), nil, nil, http.StatusNotFound)
	do("DELETE", "/deleteUser", models.DeleteUserRequest{Username: "Bob"}, admin, http.StatusOK)
	do("DELETE", "/deleteUser", models.DeleteUserRequest{Username: "Bob"}, admin, http.StatusNotFound)
	do("POST", "/login", models.LoginRequest{Username: "Bob", Password: "Bob#20245"}, nil, http.StatusNotFound)
}
