package usecase

import "errors"

// Service-layer sentinels. Handlers map these onto HTTP status codes;
// everything else surfaces as an internal error.
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
