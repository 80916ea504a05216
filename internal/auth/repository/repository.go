package repository

import (
	"errors"

	authdomain "todo-tracker/internal/auth/domain"
)

// ErrUsernameTaken is returned when a registration hits the unique index
// on users.username.
var ErrUsernameTaken = errors.New("username already taken")

// UserRepository defines the interface for account data access
type UserRepository interface {
	// Create persists a new account and fills in its generated ID
	Create(user *authdomain.User) error

	// FindByUsername finds an account by username; (nil, nil) when absent
	FindByUsername(username string) (*authdomain.User, error)

	// FindByID finds an account by ID; (nil, nil) when absent
	FindByID(id uint) (*authdomain.User, error)

	// Exists reports whether an account with the given username is stored
	Exists(username string) (bool, error)

	// Delete removes an account; the storage cascade removes its tasks
	Delete(id uint) error
}
