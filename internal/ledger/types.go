package ledger

import "time"

// PayoutAttempt is the recorded outcome of one logical release. Retries of
// the underlying chain call collapse into a single attempt. Unconfirmed marks
// a failure whose transfer may have landed; it blocks further releases for
// the PR until reconciled by hand.
type PayoutAttempt struct {
	ID                string    `json:"id"`
	Repo              string    `json:"repo"`
	PRNumber          int       `json:"prNumber"`
	ContributorWallet string    `json:"contributorWallet"`
	Amount            string    `json:"amount"`
	Success           bool      `json:"success"`
	Unconfirmed       bool      `json:"unconfirmed,omitempty"`
	TxHash            string    `json:"txHash,omitempty"`
	Error             string    `json:"error,omitempty"`
	Timestamp         time.Time `json:"timestamp"`
}

// Stats summarizes the ledger.
type Stats struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}
