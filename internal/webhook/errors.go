package webhook

import "errors"

var (
	ErrInvalidSignature   = errors.New("invalid signature")
	ErrMalformedPayload   = errors.New("malformed webhook payload")
	ErrIncompleteMetadata = errors.New("pull request metadata incomplete")
	ErrIPNotAllowed       = errors.New("source ip not allowed")
	ErrRateLimited        = errors.New("rate limit exceeded")
)
