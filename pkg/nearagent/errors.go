package nearagent

import (
	"errors"
	"fmt"
)

var ErrEmptyAccount = errors.New("agent returned an empty account id")

// CallError is a failed contract call. A call that reached the chain, either
// with a TxHash or with any 2xx answer from the agent, must not be retried.
type CallError struct {
	Method     string
	StatusCode int
	TxHash     string

	// Submitted is set when the agent answered 2xx.
	Submitted bool

	// Unconfirmed is set when the agent answered 2xx but the outcome could
	// not be read. The transfer may have landed.
	Unconfirmed bool

	Err error
}

func (e *CallError) Error() string {
	if e.TxHash != "" {
		return fmt.Sprintf("agent call %s failed (tx %s): %v", e.Method, e.TxHash, e.Err)
	}
	return fmt.Sprintf("agent call %s failed: %v", e.Method, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// Broadcast reports whether the transaction was submitted.
func (e *CallError) Broadcast() bool {
	return e.TxHash != "" || e.Submitted
}

// IsBroadcast reports whether err is a CallError for a submitted transaction.
func IsBroadcast(err error) bool {
	var ce *CallError
	return errors.As(err, &ce) && ce.Broadcast()
}

// IsUnconfirmed reports whether err is a CallError whose outcome is unknown.
func IsUnconfirmed(err error) bool {
	var ce *CallError
	return errors.As(err, &ce) && ce.Unconfirmed
}
