package repository

import "errors"

var (
	// ErrNotFound is returned by Last and First on an empty log.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEvent is returned when (type, timestamp) is already logged.
	ErrDuplicateEvent = errors.New("event already logged")
)
