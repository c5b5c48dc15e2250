package usecase

import (
	"errors"
)

// Sentinel errors classifying service failures for the HTTP boundary.
var (
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrValidation             = errors.New("validation failed")
	ErrNotFound               = errors.New("not found")
	ErrForbidden              = errors.New("forbidden")
)
