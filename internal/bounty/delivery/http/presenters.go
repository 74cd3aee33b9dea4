package http

import (
	"github-bounty-agent/internal/bounty"
	"github-bounty-agent/internal/ledger"
	"github-bounty-agent/pkg/response"
)

type historyReq struct {
	Repo string `form:"repo"`
}

type payoutItem struct {
	ID                string             `json:"id"`
	Repo              string             `json:"repo"`
	PRNumber          int                `json:"prNumber"`
	ContributorWallet string             `json:"contributorWallet"`
	Amount            string             `json:"amount"`
	Success           bool               `json:"success"`
	TxHash            string             `json:"txHash,omitempty"`
	Error             string             `json:"error,omitempty"`
	Timestamp         response.Timestamp `json:"timestamp"`
}

type historyResp struct {
	Payouts []payoutItem `json:"payouts"`
}

type releaseReq struct {
	Repo              string `json:"repo"`
	ContributorWallet string `json:"contributorWallet"`
	PRNumber          int    `json:"prNumber"`
	Secret            string `json:"secret"`
	Amount            string `json:"amount"`
}

func (r releaseReq) toInput() bounty.ManualReleaseInput {
	return bounty.ManualReleaseInput{
		ReleaseInput: bounty.ReleaseInput{
			RepoFullName:      r.Repo,
			ContributorWallet: r.ContributorWallet,
			PRNumber:          r.PRNumber,
			Amount:            r.Amount,
		},
		Secret: r.Secret,
	}
}

type registerReq struct {
	Repo             string `json:"repo"`
	MaintainerNearID string `json:"maintainerNearId"`
	Secret           string `json:"secret"`
}

// toInput takes the secret from the agent header when present; such
// requests come from the backend and are not mirrored back to it.
func (r registerReq) toInput(headerSecret string) bounty.RegisterRepoInput {
	in := bounty.RegisterRepoInput{
		Repo:             r.Repo,
		MaintainerNearID: r.MaintainerNearID,
		Secret:           r.Secret,
		NotifyBackend:    true,
	}
	if headerSecret != "" {
		in.Secret = headerSecret
		in.NotifyBackend = false
	}
	return in
}

type successResp struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func newHistoryResp(items []ledger.PayoutAttempt) historyResp {
	out := make([]payoutItem, 0, len(items))
	for _, a := range items {
		out = append(out, payoutItem{
			ID:                a.ID,
			Repo:              a.Repo,
			PRNumber:          a.PRNumber,
			ContributorWallet: a.ContributorWallet,
			Amount:            a.Amount,
			Success:           a.Success,
			TxHash:            a.TxHash,
			Error:             a.Error,
			Timestamp:         response.Timestamp(a.Timestamp),
		})
	}
	return historyResp{Payouts: out}
}
