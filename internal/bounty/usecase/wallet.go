package usecase

import (
	"context"
	"regexp"
	"strings"

	"github-bounty-agent/internal/bounty"
	"github-bounty-agent/pkg/github"
	"github-bounty-agent/pkg/near"
)

var linkWalletRe = regexp.MustCompile(`(?i)/link-wallet\s+(\S+)`)

// maintainerAssociations may link a wallet on behalf of the contributor.
var maintainerAssociations = map[string]bool{
	"OWNER":        true,
	"MEMBER":       true,
	"COLLABORATOR": true,
}

func (uc *implUseCase) ResolveWallet(ctx context.Context, input bounty.WalletInput) (string, error) {
	if w := strings.TrimSpace(input.Override); w != "" {
		return w, nil
	}

	if w := uc.walletFromText(input.PRBody); w != "" {
		return w, nil
	}

	if uc.gh != nil && input.Token != "" {
		comments, err := uc.gh.ListComments(ctx, input.RepoFullName, input.PRNumber, input.Token)
		if err != nil {
			uc.l.Warnf(ctx, "bounty.usecase.ResolveWallet: gh.ListComments %s#%d: %v", input.RepoFullName, input.PRNumber, err)
		}
		for _, c := range comments {
			w := uc.walletFromText(c.Body)
			if w == "" {
				continue
			}
			if !canLinkWallet(c, input.Contributor) {
				uc.l.Warnf(ctx, "bounty.usecase.ResolveWallet: ignoring wallet link by %s (%s) on %s#%d",
					c.Author, c.AuthorAssociation, input.RepoFullName, input.PRNumber)
				continue
			}
			return w, nil
		}
	}

	return "", bounty.ErrNoWallet
}

// walletFromText returns the first valid /link-wallet account in text.
func (uc *implUseCase) walletFromText(text string) string {
	for _, m := range linkWalletRe.FindAllStringSubmatch(text, -1) {
		w := strings.ToLower(strings.TrimRight(m[1], ".,;:)"))
		if near.ValidAccountID(w, uc.cfg.Network) {
			return w
		}
	}
	return ""
}

func canLinkWallet(c github.Comment, contributor string) bool {
	if contributor != "" && strings.EqualFold(c.Author, contributor) {
		return true
	}
	return maintainerAssociations[strings.ToUpper(c.AuthorAssociation)]
}
