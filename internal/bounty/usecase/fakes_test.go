package usecase

import (
	"context"
	"encoding/json"
	"sync"

	"github-bounty-agent/internal/comment"
	"github-bounty-agent/internal/review"
	"github-bounty-agent/pkg/backend"
	"github-bounty-agent/pkg/github"
	"github-bounty-agent/pkg/nearagent"
)

type fakeAgent struct {
	mu        sync.Mutex
	calls     []string
	lastArgs  any
	callErrs  []error
	txHash    string
	viewRaw   json.RawMessage
	viewErr   error
	blockCall chan struct{}
}

func (f *fakeAgent) View(ctx context.Context, method string, args any) (json.RawMessage, error) {
	return f.viewRaw, f.viewErr
}

func (f *fakeAgent) Call(ctx context.Context, method string, args any) (*nearagent.CallResult, error) {
	f.mu.Lock()
	n := len(f.calls)
	f.calls = append(f.calls, method)
	f.lastArgs = args
	block := f.blockCall
	f.mu.Unlock()

	if block != nil {
		<-block
	}
	if n < len(f.callErrs) && f.callErrs[n] != nil {
		return nil, f.callErrs[n]
	}
	return &nearagent.CallResult{TxHash: f.txHash}, nil
}

func (f *fakeAgent) AccountID(ctx context.Context) (string, error) {
	return "agent.testnet", nil
}

func (f *fakeAgent) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeBackend struct {
	mu         sync.Mutex
	paid       []string
	registered []backend.RegisterRepoRequest
}

func (f *fakeBackend) GetBountyAndToken(ctx context.Context, owner, repo string, prNumber int) (*backend.BountyAndToken, error) {
	return nil, nil
}

func (f *fakeBackend) AttachBounty(ctx context.Context, req backend.AttachBountyRequest) (*backend.Bounty, error) {
	return nil, nil
}

func (f *fakeBackend) MarkPaid(ctx context.Context, id string) (*backend.Bounty, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paid = append(f.paid, id)
	return &backend.Bounty{ID: id, Status: backend.StatusPaid}, nil
}

func (f *fakeBackend) RegisterRepo(ctx context.Context, req backend.RegisterRepoRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registered = append(f.registered, req)
	return nil
}

type fakePublisher struct {
	mu       sync.Mutex
	messages []string
	tokens   []string
}

func (f *fakePublisher) PostReview(ctx context.Context, repo string, pr int, v review.Verdict, token string, extra comment.ReviewExtra) {
}

func (f *fakePublisher) PostPayoutResult(ctx context.Context, repo string, pr int, message, token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, message)
	f.tokens = append(f.tokens, token)
}

func (f *fakePublisher) PostIssueLink(ctx context.Context, repo string, issue, pr int, token string) {}

type fakeGitHub struct {
	comments []github.Comment
	err      error
}

func (f *fakeGitHub) FetchDiff(ctx context.Context, diffURL, token string) (string, error) {
	return "", nil
}

func (f *fakeGitHub) CreateComment(ctx context.Context, repo string, number int, body, token string) error {
	return nil
}

func (f *fakeGitHub) ListComments(ctx context.Context, repo string, number int, token string) ([]github.Comment, error) {
	return f.comments, f.err
}
