package repository

import "errors"

var (
	// ErrNotFound covers both a missing record and a malformed identifier,
	// so callers cannot distinguish the two.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when creating a user with an email that
	// already exists.
	ErrDuplicateEmail = errors.New("email already registered")
)
