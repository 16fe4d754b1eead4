package domain

import "errors"

var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrUserNotFound       = errors.New("user not found")
	ErrProductNotFound    = errors.New("product not found")
	// ErrValidation is wrapped with the offending detail, e.g.
	// fmt.Errorf("%w: quantity must be at least 1", ErrValidation).
	ErrValidation = errors.New("validation failed")
)
