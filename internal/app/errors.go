package app

import "errors"

// Sentinel kinds for service errors.
var (
	ErrEmptyQuery = errors.New("query text must not be empty")
)
