package domain

import (
	"fmt"
	"strings"
	"time"

	apperrors "trainer/internal/platform/errors"
)

const (
	DemoUsername = "demo"
	DemoPassword = "demo123"

	MinUsernameLength = 3
	MinPasswordLength = 6
	// MaxPasswordBytes is the longest input bcrypt will hash.
	MaxPasswordBytes = 72
)

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// ActiveUser is the signed-in identity persisted between runs.
type ActiveUser struct {
	Username   string    `json:"username"`
	Name       string    `json:"name"`
	LoggedInAt time.Time `json:"logged_in_at"`
}

type Signup struct {
	Username string
	Email    string
	Password string
	Confirm  string
}

// Validate applies the signup rules in order and reports the first failure.
func (s Signup) Validate() error {
	if s.Username == "" || s.Email == "" || s.Password == "" || s.Confirm == "" {
		return fmt.Errorf("%w: please fill in all fields", apperrors.ErrInvalidInput)
	}
	if s.Password != s.Confirm {
		return fmt.Errorf("%w: passwords do not match", apperrors.ErrInvalidInput)
	}
	if len(s.Password) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters long", apperrors.ErrInvalidInput, MinPasswordLength)
	}
	if len(s.Password) > MaxPasswordBytes {
		return fmt.Errorf("%w: password must be at most %d bytes long", apperrors.ErrInvalidInput, MaxPasswordBytes)
	}
	if len(s.Username) < MinUsernameLength {
		return fmt.Errorf("%w: username must be at least %d characters long", apperrors.ErrInvalidInput, MinUsernameLength)
	}
	return nil
}

func NormalizeUsername(username string) string {
	return strings.TrimSpace(username)
}

func IsDemo(username string) bool {
	return username == DemoUsername
}
