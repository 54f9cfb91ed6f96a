package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/rogerio-castellano/resto-dashboard/internal/auth"
)

// RequestPasswordResetHandler godoc
// @Summary Request a password-reset email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body PasswordResetRequest true "Account email"
// @Success 200 {object} PasswordResetResult
// @Failure 400 {string} string "Invalid email"
// @Failure 404 {string} string "No account"
// @Failure 429 {string} string "Rate limited"
// @Failure 502 {string} string "Mail dispatch failed"
// @Router /password-reset [post]
func RequestPasswordResetHandler(w http.ResponseWriter, r *http.Request) {
	var req PasswordResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Email) == "" {
		http.Error(w, "email is required", http.StatusBadRequest)
		return
	}

	if err := identity.SendPasswordReset(r.Context(), req.Email); err != nil {
		log.Printf("password reset for %s failed: %v", req.Email, err)
		http.Error(w, auth.MessageFor(err), statusForCode(auth.CodeOf(err)))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(PasswordResetResult{Message: "Password reset email sent"}); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// ConfirmPasswordResetHandler godoc
// @Summary Set a new password using a reset token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ConfirmResetRequest true "Reset token and new password"
// @Success 200 {object} PasswordResetResult
// @Failure 400 {string} string "Invalid token or password"
// @Failure 409 {string} string "Token already used"
// @Failure 500 {string} string "Internal error"
// @Router /password-reset/confirm [post]
func ConfirmPasswordResetHandler(w http.ResponseWriter, r *http.Request) {
	var req ConfirmResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	err := auth.CompleteReset(r.Context(), userRepo, tokenStore, req.Token, req.NewPassword)
	switch {
	case err == nil:
	case errors.Is(err, auth.ErrPasswordTooShort):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, auth.ErrTokenInvalid):
		http.Error(w, "invalid or expired reset link", http.StatusBadRequest)
		return
	case errors.Is(err, auth.ErrTokenUsed):
		http.Error(w, "reset link already used", http.StatusConflict)
		return
	default:
		log.Printf("password reset confirmation failed: %v", err)
		http.Error(w, "could not reset password", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(PasswordResetResult{Message: "Password updated"}); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

func statusForCode(code string) int {
	switch code {
	case auth.CodeInvalidEmail:
		return http.StatusBadRequest
	case auth.CodeUserNotFound:
		return http.StatusNotFound
	case auth.CodeTooManyRequests:
		return http.StatusTooManyRequests
	case auth.CodeNetworkFailure:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
