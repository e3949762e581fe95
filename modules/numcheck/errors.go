package numcheck

import "errors"

var (
	ErrUnknownFormat  = errors.New("unknown format")
	ErrInvalidRequest = errors.New("invalid request body")
)
