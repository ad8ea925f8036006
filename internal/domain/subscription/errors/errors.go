package errors

import "errors"

var (
	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrInvalidIntent    = errors.New("invalid intent")
	ErrStoreUnavailable = errors.New("subscription store unavailable")
)
