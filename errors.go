package todod

import "errors"

var (
	// ErrNotFound is returned when an item does not exist in the store
	ErrNotFound = errors.New("not found")
	// ErrInternal is returned when an internal error occurs
	ErrInternal = errors.New("internal error")
	// ErrInvalidInput is returned when request validation fails
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnauthorized is returned when the credential check fails
	ErrUnauthorized = errors.New("unauthorized")
)
