package usecase

import (
	authdomain "todo-tracker/internal/auth/domain"
)

// AuthUsecase defines the interface for account business logic
type AuthUsecase interface {
	// Register creates a new account and returns its identifier
	Register(username, password string) (uint, error)

	// Exists reports whether an account with the given username exists
	Exists(username string) (bool, error)

	// Login verifies the credentials and returns the matching account.
	// Unknown username and wrong password are indistinguishable here; the
	// caller derives any distinct messaging from Exists.
	Login(username, password string) (*authdomain.User, error)
}
