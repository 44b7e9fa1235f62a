package domain

import "errors"

var (
	ErrUnknownTemplate = errors.New("unknown content template")
	ErrMissingField    = errors.New("missing template field")
	ErrContentNotFound = errors.New("generated content not found")
)
