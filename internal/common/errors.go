// Package common defines shared sentinel errors used across the
// Twitter-Clone backend layers. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Signup flow errors, in the order the checks run.
	ErrMissingFields    = errors.New("missing fields")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrUsernameTaken    = errors.New("username already exists")
	ErrEmailTaken       = errors.New("email already exists")
	ErrPasswordTooShort = errors.New("password too short")

	// Login flow errors.
	ErrMissingCredentials = errors.New("missing credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidPassword    = errors.New("invalid password")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
