package server

import "errors"

var (
	// ErrPlayerNotFound is returned when a lookup targets an unregistered player.
	ErrPlayerNotFound = errors.New("player not found")
	// ErrInvalidBody is returned when a request body fails to decode.
	ErrInvalidBody = errors.New("invalid request body")
	// ErrInvalidRollbackDelta is returned when the {delta} path segment of a
	// rollback request is not a positive integer.
	ErrInvalidRollbackDelta = errors.New("invalid rollback delta")
)
