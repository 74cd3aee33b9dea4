package bounty

// ReleaseInput is one logical payout request.
type ReleaseInput struct {
	RepoFullName      string
	ContributorWallet string
	PRNumber          int

	// Amount in NEAR. Empty means look up the repository bounty on chain.
	Amount string

	// BountyID is the backend record to mark paid after success.
	BountyID string

	// Token is the delegated GitHub token used for the result comment.
	// Empty falls back to the service token, if one is configured.
	Token string
}

// ManualReleaseInput is a maintainer-triggered release.
type ManualReleaseInput struct {
	ReleaseInput
	Secret string
}

// ReleaseOutput reports the outcome of Release.
// Unconfirmed is set when the chain agent accepted the transfer but its
// outcome could not be read.
type ReleaseOutput struct {
	Success     bool   `json:"success"`
	Unconfirmed bool   `json:"unconfirmed,omitempty"`
	Amount      string `json:"amount,omitempty"`
	TxHash      string `json:"txHash,omitempty"`
	Error       string `json:"error,omitempty"`
}

// WalletInput holds the sources searched for a contributor wallet.
type WalletInput struct {
	// Override wins over everything else when set.
	Override     string
	RepoFullName string
	PRNumber     int
	PRBody       string

	// Contributor is the PR author's login. Comment links count only when
	// posted by the contributor or a maintainer.
	Contributor string
	Token       string
}

// Balance is the on-chain bounty pool of a repository.
type Balance struct {
	Repo     string `json:"repo"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// RegisterRepoInput registers a repository with the contract.
type RegisterRepoInput struct {
	Repo             string
	MaintainerNearID string

	// Secret must match the maintainer secret. The backend sends it as
	// x-agent-secret, other callers in the body.
	Secret string

	// NotifyBackend mirrors the registration to the backend. Requests that
	// come from the backend itself leave it false.
	NotifyBackend bool
}

const Currency = "NEAR"
