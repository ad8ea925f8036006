package errors

import "errors"

var (
	ErrCredentialExchange = errors.New("credential exchange failed")
	ErrDeliveryFailed     = errors.New("push delivery failed")
)
