package repo

import (
	"context"
	"strings"

	"github.com/rogerio-castellano/resto-dashboard/internal/models"
)

// InMemoryUserRepository is an in-memory implementation of UserRepository.
type InMemoryUserRepository struct {
	users  []models.User
	nextID int
}

// NewInMemoryUserRepository creates a new instance of InMemoryUserRepository.
func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{users: []models.User{}, nextID: 1}
}

// CreateUser adds a user and assigns its ID.
func (r *InMemoryUserRepository) CreateUser(user models.User) (models.User, error) {
	user.ID = r.nextID
	r.nextID++
	r.users = append(r.users, user)
	return user, nil
}

// GetByEmail retrieves a user by email, case-insensitively.
func (r *InMemoryUserRepository) GetByEmail(_ context.Context, email string) (models.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

// UpdatePassword replaces the stored password hash.
func (r *InMemoryUserRepository) UpdatePassword(_ context.Context, id int, passwordHash string) error {
	for i, u := range r.users {
		if u.ID == id {
			r.users[i].PasswordHash = passwordHash
			return nil
		}
	}
	return ErrUserNotFound
}

func (r *InMemoryUserRepository) Clear() {
	r.users = []models.User{}
}
