package core

import "errors"

var (
	// ErrInvalidDimensions is returned when a field cannot be allocated
	// with the requested size.
	ErrInvalidDimensions = errors.New("invalid field dimensions")
)
