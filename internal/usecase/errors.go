package usecase

import "errors"

// Sentinels returned by ShotMapService. The HTTP layer maps them to 400, 404
// and 503 respectively.
var (
	ErrInvalidInput          = errors.New("invalid selection")
	ErrNotFound              = errors.New("match not found")
	ErrDependencyUnavailable = errors.New("shot dataset unavailable")
)
