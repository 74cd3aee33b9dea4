package review

import "errors"

var (
	ErrMalformedVerdict = errors.New("malformed review verdict")
	ErrEmptyCompletion  = errors.New("no content returned from completion API")
)
