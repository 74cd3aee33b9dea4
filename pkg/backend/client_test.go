package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github-bounty-agent/pkg/backend"
)

func newGateway(t *testing.T, h http.HandlerFunc) backend.Gateway {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	gw, err := backend.New(backend.Config{BaseURL: ts.URL + "/", AgentSecret: "lockmeup"})
	require.NoError(t, err)
	return gw
}

func TestGetBountyAndToken(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/bounty/octo/hello/pr/42", r.URL.Path)
		assert.Equal(t, "lockmeup", r.Header.Get(backend.AgentSecretHeader))
		_, _ = w.Write([]byte(`{"bounty":{"id":"b1","prNumber":42,"amount":5,"status":"open"},"githubToken":"gho_x"}`))
	})

	res, err := gw.GetBountyAndToken(context.Background(), "octo", "hello", 42)
	require.NoError(t, err)
	require.Equal(t, "gho_x", res.GitHubToken)
	require.NotNil(t, res.Bounty)
	require.Equal(t, backend.Decimal("5"), res.Bounty.Amount)
	require.Equal(t, 42, *res.Bounty.PRNumber)
	require.True(t, res.Bounty.IsOpen())
}

func TestGetBountyAndToken_NoBounty(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"bounty":null,"githubToken":"gho_x"}`))
	})

	res, err := gw.GetBountyAndToken(context.Background(), "octo", "hello", 1)
	require.NoError(t, err)
	require.Nil(t, res.Bounty)
}

func TestGetBountyAndToken_MissingToken(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"bounty":null,"githubToken":null}`))
	})

	_, err := gw.GetBountyAndToken(context.Background(), "octo", "hello", 1)
	require.ErrorIs(t, err, backend.ErrNoDelegatedToken)
	require.ErrorIs(t, err, backend.ErrDependencyUnavailable)

	var depErr *backend.DependencyError
	require.True(t, errors.As(err, &depErr))
	require.Equal(t, backend.KindUnauthorized, depErr.Kind)
	require.False(t, depErr.IsRetryable())
}

func TestGetBountyAndToken_NotFound(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Repository not found"}`))
	})

	_, err := gw.GetBountyAndToken(context.Background(), "octo", "hello", 1)
	require.ErrorIs(t, err, backend.ErrNoDelegatedToken)
}

func TestDependencyErrorKinds(t *testing.T) {
	tests := []struct {
		status    int
		kind      backend.Kind
		retryable bool
	}{
		{http.StatusUnauthorized, backend.KindUnauthorized, false},
		{http.StatusForbidden, backend.KindUnauthorized, false},
		{http.StatusBadGateway, backend.KindUnavailable, true},
		{http.StatusInternalServerError, backend.KindUnavailable, true},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := gw.MarkPaid(context.Background(), "b1")
			var depErr *backend.DependencyError
			require.True(t, errors.As(err, &depErr))
			require.Equal(t, tt.status, depErr.StatusCode)
			require.Equal(t, tt.kind, depErr.Kind)
			require.Equal(t, tt.retryable, depErr.IsRetryable())
			require.ErrorIs(t, err, backend.ErrDependencyUnavailable)
		})
	}
}

func TestAttachBounty(t *testing.T) {
	var got map[string]any
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/bounty/attach", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"bounty":{"id":"b7","issueNumber":7,"amount":"12.5","status":"open"}}`))
	})

	issue := 7
	b, err := gw.AttachBounty(context.Background(), backend.AttachBountyRequest{
		Repo:        "octo/hello",
		IssueNumber: &issue,
		Amount:      "12.5",
	})
	require.NoError(t, err)
	require.Equal(t, "b7", b.ID)
	require.Equal(t, "12.5", got["amount"])
	require.Equal(t, float64(7), got["issueNumber"])
	_, hasPR := got["prNumber"]
	require.False(t, hasPR)
}

func TestMarkPaid(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/bounty/b1/mark-paid", r.URL.Path)
		_, _ = w.Write([]byte(`{"bounty":{"id":"b1","amount":"5","status":"paid"}}`))
	})

	b, err := gw.MarkPaid(context.Background(), "b1")
	require.NoError(t, err)
	require.Equal(t, backend.StatusPaid, b.Status)
}

func TestRegisterRepo(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		var req backend.RegisterRepoRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.MaintainerNearID == "" {
			_, _ = w.Write([]byte(`{"success":false,"error":"missing maintainer"}`))
			return
		}
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	require.NoError(t, gw.RegisterRepo(context.Background(), backend.RegisterRepoRequest{Repo: "octo/hello", MaintainerNearID: "alice.testnet"}))
	require.Error(t, gw.RegisterRepo(context.Background(), backend.RegisterRepoRequest{Repo: "octo/hello"}))
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := backend.New(backend.Config{})
	require.Error(t, err)
}
