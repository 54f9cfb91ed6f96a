package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/rogerio-castellano/resto-dashboard/internal/repo"
)

var (
	ErrTokenUsed        = errors.New("reset token already used")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
)

const minPasswordLength = 6

// CompleteReset finishes the flow the reset email started: it verifies the
// token, consumes its jti exactly once and stores the new password hash.
func CompleteReset(ctx context.Context, users repo.UserRepository, store TokenStore, token, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}

	email, jti, err := ParseResetToken(token)
	if err != nil {
		return err
	}

	user, err := users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			return ErrTokenInvalid
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	ok, err := store.Consume(ctx, jti, ResetTokenTTL)
	if err != nil {
		return err
	}
	if !ok {
		return ErrTokenUsed
	}

	if err := users.UpdatePassword(ctx, user.ID, string(hashed)); err != nil {
		// The password never changed, so the link did no work. Hand the
		// jti back so the same token can be retried.
		_ = store.Release(ctx, jti)
		return err
	}
	return nil
}
