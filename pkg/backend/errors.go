package backend

import (
	"errors"
	"fmt"
)

var (
	// ErrDependencyUnavailable matches every DependencyError.
	ErrDependencyUnavailable = errors.New("backend dependency unavailable")

	// ErrNoDelegatedToken means the repository owner has not granted the
	// agent a GitHub token.
	ErrNoDelegatedToken = errors.New("no delegated GitHub token for repository")
)

// Kind classifies a DependencyError.
type Kind int

const (
	KindUnavailable Kind = iota
	KindUnauthorized
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	default:
		return "unavailable"
	}
}

// DependencyError is returned for transport failures and non-2xx responses.
type DependencyError struct {
	Op         string
	StatusCode int
	Kind       Kind
	Err        error
}

func (e *DependencyError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("backend %s: %s (status %d): %v", e.Op, e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("backend %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}

func (e *DependencyError) Is(target error) bool {
	return target == ErrDependencyUnavailable
}

// IsRetryable reports whether the failure is a 5xx, timeout or transport error.
func (e *DependencyError) IsRetryable() bool {
	return e.Kind == KindUnavailable
}

func kindForStatus(code int) Kind {
	switch {
	case code == 401 || code == 403:
		return KindUnauthorized
	case code == 404:
		return KindNotFound
	default:
		return KindUnavailable
	}
}
