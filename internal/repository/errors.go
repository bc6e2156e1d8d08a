package repository

import "errors"

var (
	// ErrNotFound is returned when a lookup key has no record.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique field is already taken.
	ErrDuplicate = errors.New("record already exists")
)
