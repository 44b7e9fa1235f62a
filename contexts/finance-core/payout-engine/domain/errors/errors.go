package errors

import "errors"

var (
	ErrInvalidRateConfig = errors.New("invalid campaign rate config")
	ErrNegativeViewCount = errors.New("view count cannot be negative")
)
