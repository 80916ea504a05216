package usecase

import (
	"errors"

	authdomain "todo-tracker/internal/auth/domain"
	"todo-tracker/internal/auth/repository"
)

var (
	// ErrInvalidCredentials is returned when the username or password is wrong
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrEmptyCredentials is returned when the username or password is blank
	ErrEmptyCredentials = errors.New("username and password must not be empty")
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository) AuthUsecase {
	return &authUsecase{userRepo: userRepo}
}

func (u *authUsecase) Register(username, password string) (uint, error) {
	if username == "" || password == "" {
		return 0, ErrEmptyCredentials
	}

	// Pre-check for a friendlier error; the unique index on users.username
	// still catches the race the check alone would leave open.
	taken, err := u.userRepo.Exists(username)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, repository.ErrUsernameTaken
	}

	user := &authdomain.User{
		Username: username,
		Password: repository.HashPassword(password),
	}
	if err := u.userRepo.Create(user); err != nil {
		return 0, err
	}

	return user.ID, nil
}

func (u *authUsecase) Exists(username string) (bool, error) {
	return u.userRepo.Exists(username)
}

func (u *authUsecase) Login(username, password string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !repository.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
