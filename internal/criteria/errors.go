package criteria

import "errors"

var (
	ErrMissingFields = errors.New("repo, criteria, and secret required")
	ErrInvalidSecret = errors.New("invalid secret")
)
