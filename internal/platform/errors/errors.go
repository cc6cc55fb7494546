package apperrors

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrLastSection        = errors.New("at least one section must remain")
	ErrDuplicateSection   = errors.New("section already exists")
	ErrNoActiveUser       = errors.New("no active user")
	ErrUserExists         = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
