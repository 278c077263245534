package repository

import "errors"

// Sentinel kinds for snapshot store errors.
var (
	ErrEmpty = errors.New("no snapshot available")
)
