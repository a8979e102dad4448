package user

import "errors"

// Repository-level errors
var (
	ErrUserNotFound          = errors.New("user not found")
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrUsernameAlreadyExists = errors.New("username already exists")
)

// Service-level errors
var (
	// Deliberately identical for unknown email and wrong password so the
	// caller cannot probe which emails are registered.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
