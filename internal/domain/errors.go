package domain

import "errors"

// Sentinel errors.
var (
	ErrNotFound          = errors.New("not found")
	ErrUnsupportedSource = errors.New("unsupported program source")
	ErrInvalidToken      = errors.New("invalid token")
)
