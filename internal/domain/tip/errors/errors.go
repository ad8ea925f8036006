package errors

import "errors"

var (
	ErrNoTips           = errors.New("no tips available")
	ErrInvalidTip       = errors.New("invalid tip")
	ErrReservedCategory = errors.New("category label is reserved")
	ErrStoreUnavailable = errors.New("tip store unavailable")
)
