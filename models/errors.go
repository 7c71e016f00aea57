package models

import "errors"

// Sentinel errors classified once at the controller boundary into HTTP codes.
// Services wrap them with %w to add context.
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("authentication required")
	ErrForbidden    = errors.New("you are unauthorized to perform this operation")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("transaction has failed")
)
