// Package common defines shared sentinel errors used across Flock components.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Signup validation errors.
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrPasswordTooShort = errors.New("password too short")

	// Signup conflict errors. Raised by the pre-check and by the store's
	// unique constraints, so a racing insert maps to the same value.
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")

	// Login failures collapse into one value regardless of which factor
	// was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Post validation errors.
	ErrEmptyPost = errors.New("post must have text or image")
)
