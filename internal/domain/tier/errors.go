package tier

import "errors"

// Sentinel kinds for ladder validation errors.
var (
	ErrEmptyLadder   = errors.New("ladder has no tiers")
	ErrNotDescending = errors.New("ladder thresholds not descending")
	ErrNoCatchAll    = errors.New("ladder missing zero-threshold catch-all")
)
