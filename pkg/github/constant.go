package github

import "time"

const (
	// MaxDiffChars bounds the diff handed to the reviewer.
	MaxDiffChars = 50000

	// DiffMediaType asks GitHub for a unified diff.
	DiffMediaType = "application/vnd.github.v3.diff"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	commentsPerPage = 100
)
