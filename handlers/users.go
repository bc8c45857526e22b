// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/Harold12002/quick-voting-backend/auth"
	"github.com/Harold12002/quick-voting-backend/cliparse"
	"github.com/Harold12002/quick-voting-backend/db"
	"github.com/Harold12002/quick-voting-backend/middleware"
	"github.com/Harold12002/quick-voting-backend/models"
)

type UserHandler struct {
	db     *sql.DB
	cfg    cliparse.Config
	tokens *auth.TokenService
}

func NewUserHandler(db *sql.DB, cfg cliparse.Config, tokens *auth.TokenService) *UserHandler {
	return &UserHandler{db: db, cfg: cfg, tokens: tokens}
}

// Register handles POST /register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Username == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Password and username are required")
		return
	}

	var exists bool
	err := h.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)
	`, req.Username).Scan(&exists)
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error registering user")
		return
	}
	if exists {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Username already exists")
		return
	}

	if err := auth.ValidateUsername(req.Username); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := auth.ValidateEmail(req.Email); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	// Role defaults to Voter; anything outside the closed set is rejected
	role := models.RoleVoter
	if req.Role != "" {
		role, err = models.ParseRole(req.Role)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "role must be Admin or Voter")
			return
		}
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error registering user")
		return
	}

	_, err = h.db.Exec(`
		INSERT INTO users (username, password_hash, email, role, has_voted, created_at)
		VALUES ($1, $2, $3, $4, FALSE, $5)
	`, req.Username, hash, req.Email, string(role), time.Now().UTC())
	if db.IsUniqueViolation(err) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Username already exists")
		return
	}
	if err != nil {
		slog.Error("failed to insert user", "error", err, "username", req.Username)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error registering user")
		return
	}

	slog.Info("user registered", "username", req.Username, "role", role)

	middleware.JSONResponse(w, http.StatusCreated, models.MessageResponse{
		Message: "User registered successfully",
	})
}

// Login handles POST /login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Username == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Username and Password are required")
		return
	}

	var hash, roleStr string
	err := h.db.QueryRow(`
		SELECT password_hash, role FROM users WHERE username = $1
	`, req.Username).Scan(&hash, &roleStr)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if !auth.CheckPassword(hash, req.Password) {
		slog.Warn("failed login", "username", req.Username, "client_ip", middleware.GetClientIP(r))
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	role, err := models.ParseRole(roleStr)
	if err != nil {
		slog.Error("stored role is invalid", "username", req.Username, "role", roleStr)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := h.tokens.Issue(req.Username, role)
	if err != nil {
		slog.Error("failed to issue token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	slog.Info("user logged in", "username", req.Username, "role", role)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{Token: token})
}

// RequestPasswordReset handles POST /request-password-reset
func (h *UserHandler) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordResetRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Username == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username is required")
		return
	}

	resetToken, err := auth.GenerateResetToken()
	if err != nil {
		slog.Error("failed to generate reset token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	now := time.Now().UTC()
	expiry := now.Add(h.cfg.ResetTokenTTL)

	res, err := h.db.Exec(`
		UPDATE users SET reset_token = $1, token_expiry = $2 WHERE username = $3
	`, resetToken, expiry, req.Username)
	if err != nil {
		slog.Error("failed to store reset token", "error", err, "username", req.Username)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found")
		return
	}

	slog.Info("password reset requested", "username", req.Username, "expires", expiry)

	middleware.JSONResponse(w, http.StatusOK, models.PasswordResetResponse{
		ResetToken: resetToken,
		ExpiresIn:  humanize.RelTime(now, expiry, "ago", "from now"),
	})
}

// ResetPassword handles POST /reset-password
func (h *UserHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Username == "" || req.ResetToken == "" || req.NewPassword == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "newPassword, username and resetToken are required")
		return
	}

	var stored sql.NullString
	var expiry sql.NullTime
	err := h.db.QueryRow(`
		SELECT reset_token, token_expiry FROM users WHERE username = $1
	`, req.Username).Scan(&stored, &expiry)
	if err != nil && err != sql.ErrNoRows {
		slog.Error("failed to query reset token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// Unknown user, no pending reset, wrong token and expiry all look the same
	if err == sql.ErrNoRows || !stored.Valid || !expiry.Valid ||
		!auth.TokensEqual(stored.String, req.ResetToken) ||
		time.Now().After(expiry.Time) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid or expired reset token")
		return
	}

	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// Token must still match so a concurrent reset cannot be replayed
	res, err := h.db.Exec(`
		UPDATE users SET password_hash = $1, reset_token = NULL, token_expiry = NULL
		WHERE username = $2 AND reset_token = $3
	`, hash, req.Username, stored.String)
	if err != nil {
		slog.Error("failed to update password", "error", err, "username", req.Username)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid or expired reset token")
		return
	}

	slog.Info("password reset", "username", req.Username)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Password reset successfully",
	})
}

// DeleteUser handles DELETE /deleteUser (Admin)
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteUserRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Username == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Provide username to delete")
		return
	}

	res, err := h.db.Exec(`DELETE FROM users WHERE username = $1`, req.Username)
	if err != nil {
		slog.Error("failed to delete user", "error", err, "username", req.Username)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	n, err := res.RowsAffected()
	if err != nil {
		slog.Error("failed to read affected rows", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if n == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found")
		return
	}

	admin, _ := middleware.ClaimsFromContext(r.Context())
	slog.Info("user deleted", "username", req.Username, "by", adminName(admin))

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "User successfully deleted",
	})
}

func adminName(claims *auth.Claims) string {
	if claims == nil {
		return ""
	}
	return claims.Username
}
