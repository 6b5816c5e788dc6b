package adapter

import "errors"

// Sentinel errors mapped from HTTP response status codes. The service layer
// matches them with [errors.Is] to decide whether the cached note list may
// be kept.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)
