package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/josbet/floreria/app/models"
	"github.com/josbet/floreria/app/repositories"
)

var (
	// ErrMissingFields: username, email or password empty after trimming.
	ErrMissingFields = errors.New("auth: missing required fields")
	// ErrPasswordMismatch: password and confirmation differ.
	ErrPasswordMismatch = errors.New("auth: password confirmation does not match")
	// ErrDuplicate: the username or email is already registered.
	ErrDuplicate = errors.New("auth: username or email already registered")
	// ErrInvalidCredentials covers both unknown identifier and wrong
	// password; callers must not distinguish the two.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
)

// AuthService implements registration and login.
type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService(users *repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates a new account. Email is normalised to lower case; the
// password is bcrypt-hashed and never stored raw.
func (s *AuthService) Register(username, email, password, confirm string) (models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if username == "" || email == "" || password == "" {
		return models.User{}, ErrMissingFields
	}
	if password != confirm {
		return models.User{}, ErrPasswordMismatch
	}

	exists, err := s.users.Exists(username, email)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, ErrDuplicate
	}

	user := models.User{Username: username, Email: email}
	if err := user.SetPassword(password); err != nil {
		return models.User{}, err
	}

	if err := s.users.Create(&user); err != nil {
		// Two concurrent registrations can pass the existence check;
		// the unique index decides, and the loser sees the same
		// duplicate message.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.User{}, ErrDuplicate
		}
		return models.User{}, err
	}

	return user, nil
}

// Login resolves identifier (username or email) and checks the password.
// Every failure returns ErrInvalidCredentials so the caller cannot leak
// whether the account exists.
func (s *AuthService) Login(identifier, password string) (models.User, error) {
	identifier = strings.TrimSpace(identifier)

	user, err := s.users.FindByIdentifier(identifier)
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if !user.CheckPassword(password) {
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}
