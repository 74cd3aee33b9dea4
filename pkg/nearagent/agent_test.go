package nearagent_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github-bounty-agent/pkg/nearagent"
)

func newAgent(t *testing.T, h http.HandlerFunc) nearagent.IAgent {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	a, err := nearagent.New(nearagent.Config{BaseURL: ts.URL})
	require.NoError(t, err)
	return a
}

func TestView(t *testing.T) {
	a := newAgent(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/agent/view", r.URL.Path)
		var req struct {
			MethodName string         `json:"methodName"`
			Args       map[string]any `json:"args"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, nearagent.MethodGetBounty, req.MethodName)
		assert.Equal(t, "octo/hello", req.Args["repo_id"])
		_, _ = w.Write([]byte(`{"result":"5000000000000000000000000"}`))
	})

	raw, err := a.View(context.Background(), nearagent.MethodGetBounty, map[string]string{"repo_id": "octo/hello"})
	require.NoError(t, err)
	require.JSONEq(t, `"5000000000000000000000000"`, string(raw))
}

func TestCall_Success(t *testing.T) {
	a := newAgent(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/agent/call", r.URL.Path)
		_, _ = w.Write([]byte(`{"transaction":{"hash":"9xTx"},"status":{"SuccessValue":""}}`))
	})

	res, err := a.Call(context.Background(), nearagent.MethodReleaseBounty, map[string]string{"repo_id": "octo/hello"})
	require.NoError(t, err)
	require.Equal(t, "9xTx", res.TxHash)
}

func TestCall_ExecutionFailureIsBroadcast(t *testing.T) {
	a := newAgent(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"transaction":{"hash":"failedTx"},"status":{"Failure":{"ActionError":{}}}}`))
	})

	_, err := a.Call(context.Background(), nearagent.MethodReleaseBounty, nil)
	require.Error(t, err)
	require.True(t, nearagent.IsBroadcast(err))

	var ce *nearagent.CallError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, "failedTx", ce.TxHash)
}

func TestCall_ServerErrorNotBroadcast(t *testing.T) {
	a := newAgent(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"rpc unavailable"}`))
	})

	_, err := a.Call(context.Background(), nearagent.MethodReleaseBounty, nil)
	require.Error(t, err)
	require.False(t, nearagent.IsBroadcast(err))
	require.Contains(t, err.Error(), "rpc unavailable")
}

func TestCall_UndecodableSuccessIsUnconfirmed(t *testing.T) {
	a := newAgent(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`transfer submitted`))
	})

	_, err := a.Call(context.Background(), nearagent.MethodReleaseBounty, nil)
	require.Error(t, err)
	require.True(t, nearagent.IsBroadcast(err))
	require.True(t, nearagent.IsUnconfirmed(err))
}

func TestCall_ReportedFailureWithoutHashIsBroadcast(t *testing.T) {
	a := newAgent(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"error":"insufficient pool"}`))
	})

	_, err := a.Call(context.Background(), nearagent.MethodReleaseBounty, nil)
	require.Error(t, err)
	require.True(t, nearagent.IsBroadcast(err))
	require.False(t, nearagent.IsUnconfirmed(err))
	require.Contains(t, err.Error(), "insufficient pool")
}

func TestAccountID(t *testing.T) {
	a := newAgent(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		_, _ = w.Write([]byte(`{"accountId":"agent.testnet"}`))
	})

	id, err := a.AccountID(context.Background())
	require.NoError(t, err)
	require.Equal(t, "agent.testnet", id)
}
