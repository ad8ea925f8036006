package errors

import "errors"

var (
	ErrUnknownIntent = errors.New("unknown intent")
	ErrMissingUserID = errors.New("missing user ID")
)
