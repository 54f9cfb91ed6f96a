package repo

import (
	"context"
	"errors"

	"github.com/rogerio-castellano/resto-dashboard/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository covers the identity lookups the reset flow needs.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (models.User, error)
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
}
