package feed

import "errors"

// Sentinel kinds for feed errors.
var (
	ErrFetch     = errors.New("payload fetch failed")
	ErrBadStatus = errors.New("unexpected upstream status")
	ErrDecode    = errors.New("payload decode failed")
)
