package ledger

import "errors"

var (
	ErrFailedToAppend = errors.New("failed to append payout attempt")
	ErrFailedToList   = errors.New("failed to list payout attempts")
)
