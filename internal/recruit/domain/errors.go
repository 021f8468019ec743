package domain

import "errors"

var (
	// ErrNotFound is returned when no application exists for an email.
	ErrNotFound = errors.New("application not found")
)
