// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request IDs and Logging

WithRequestID wraps the whole mux and tags every request with the caller's
X-Request-ID or a fresh UUID. WithLogging wraps individual routes:

	mux.HandleFunc("GET /results", middleware.WithLogging(handler))

Logs request start (method, path, client_ip, request_id) and completion
(status, duration_ms).

# Gate

Protected routes chain RequireAuth and RequireCapability:

	authed := middleware.RequireAuth(tokens)
	admin := middleware.RequireCapability(models.CapManageCandidates)
	mux.HandleFunc("POST /addCandidate", middleware.WithLogging(authed(admin(h.AddCandidate))))

A missing, malformed or expired bearer token is a 401. A valid token whose
role lacks the capability is a 403. Handlers read the verified claims with
ClaimsFromContext.

# CORS Middleware

	server := http.Server{
		Handler: middleware.CORS(middleware.WithRequestID(mux)),
	}

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Handles X-Forwarded-For and X-Real-IP before falling back to RemoteAddr.
*/
package middleware
