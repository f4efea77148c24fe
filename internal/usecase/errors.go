package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrInsufficientData      = errors.New("insufficient data")
	ErrInconsistentState     = errors.New("inconsistent state")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
