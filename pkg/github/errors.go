package github

import "errors"

var (
	ErrInvalidRepoName = errors.New("invalid repository full name")
	ErrMissingToken    = errors.New("missing GitHub token")
)
