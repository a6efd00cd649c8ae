package auth

import "errors"

var (
	ErrInvalidInput       = errors.New("name, email and password are required")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
