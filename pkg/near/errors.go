package near

import "errors"

var (
	ErrInvalidAmount  = errors.New("invalid NEAR amount")
	ErrUnknownNetwork = errors.New("unknown NEAR network")
)
