package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"golang.org/x/time/rate"

	smtpmail "github.com/rogerio-castellano/resto-dashboard/internal/mail"
	"github.com/rogerio-castellano/resto-dashboard/internal/ratelimit"
	"github.com/rogerio-castellano/resto-dashboard/internal/repo"
)

// Error codes reported by the identity provider. The vocabulary matches
// what the mobile clients already map to user-facing copy.
const (
	CodeInvalidEmail    = "auth/invalid-email"
	CodeUserNotFound    = "auth/user-not-found"
	CodeTooManyRequests = "auth/too-many-requests"
	CodeNetworkFailure  = "auth/network-request-failed"
	CodeInternal        = "auth/internal-error"
)

// ProviderError carries the provider's error code alongside the cause.
type ProviderError struct {
	Code string
	Err  error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return e.Code
}

func (e *ProviderError) Unwrap() error { return e.Err }

// CodeOf extracts the provider code from an error chain, or "" if none.
func CodeOf(err error) string {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ""
}

// IdentityProvider dispatches password-reset messages.
type IdentityProvider interface {
	SendPasswordReset(ctx context.Context, email string) error
}

// LocalProvider implements IdentityProvider against the local user store:
// it validates the address, rate-limits per email, issues a reset token and
// mails the link.
type LocalProvider struct {
	users   repo.UserRepository
	mailer  smtpmail.Mailer
	baseURL string
	limits  *ratelimit.Keyed
}

func NewLocalProvider(users repo.UserRepository, mailer smtpmail.Mailer, baseURL string) *LocalProvider {
	return &LocalProvider{
		users:   users,
		mailer:  mailer,
		baseURL: strings.TrimRight(baseURL, "/"),
		limits:  ratelimit.NewKeyed(rate.Every(time.Minute), 3),
	}
}

// StartLimiterCleanup evicts idle per-email limiters. Run as a goroutine.
func (p *LocalProvider) StartLimiterCleanup() {
	p.limits.CleanupLoop(5 * time.Minute)
}

func (p *LocalProvider) SendPasswordReset(ctx context.Context, email string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return &ProviderError{Code: CodeInvalidEmail, Err: err}
	}

	if !p.limits.Allow(strings.ToLower(email)) {
		return &ProviderError{Code: CodeTooManyRequests}
	}

	user, err := p.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			return &ProviderError{Code: CodeUserNotFound, Err: err}
		}
		return &ProviderError{Code: CodeInternal, Err: err}
	}

	token, err := GenerateResetToken(user)
	if err != nil {
		return &ProviderError{Code: CodeInternal, Err: err}
	}

	body := fmt.Sprintf(
		"Hi %s,\n\nUse the link below to reset your password. It expires in %d minutes.\n\n%s/reset-password?token=%s\n",
		user.Username, int(ResetTokenTTL.Minutes()), p.baseURL, token)
	if err := p.mailer.Send(user.Email, "Reset your password", body); err != nil {
		return &ProviderError{Code: CodeNetworkFailure, Err: err}
	}
	return nil
}
