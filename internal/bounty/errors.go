package bounty

import "errors"

var (
	ErrMissingFields     = errors.New("repo, contributorWallet, prNumber, and secret are required")
	ErrInvalidSecret     = errors.New("invalid secret")
	ErrInvalidWallet     = errors.New("invalid contributor wallet")
	ErrNoWallet          = errors.New("no contributor wallet linked")
	ErrAlreadyPaid       = errors.New("bounty already paid for this pull request")
	ErrReleaseInProgress = errors.New("bounty release already in progress for this pull request")
	ErrNoBountyAmount    = errors.New("no bounty amount available")
	ErrPayoutFailed      = errors.New("payout failed")
	ErrPayoutUnconfirmed = errors.New("earlier payout for this pull request is unconfirmed and needs manual reconciliation")
	ErrRegisterFailed    = errors.New("repository registration failed")
)
