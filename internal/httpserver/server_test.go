package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github-bounty-agent/internal/bounty"
	"github-bounty-agent/internal/ledger"
	"github-bounty-agent/pkg/log"
)

type stubBounty struct {
	bounty.UseCase
	stats ledger.Stats
}

func (s stubBounty) Stats(ctx context.Context) (ledger.Stats, error) {
	return s.stats, nil
}

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	srv, err := New(log.NewNopLogger(), Config{
		Port:           3000,
		Mode:           gin.TestMode,
		Environment:    "test",
		AgentAccountID: "agent.testnet",
		BountyUC:       stubBounty{stats: ledger.Stats{Total: 3, Successful: 2, Failed: 1}},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var got healthResp
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := healthResp{
		Status:         "ok",
		Agent:          "registered",
		AgentAccountID: "agent.testnet",
		Payouts:        ledger.Stats{Total: 3, Successful: 2, Failed: 1},
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected a request id header")
	}
}

func TestNotFound(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if w.Body.String() != `{"error":"Not Found","path":"/nope"}` {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestNew_Validation(t *testing.T) {
	if _, err := New(log.NewNopLogger(), Config{Mode: gin.TestMode, Port: 3000}); err == nil {
		t.Error("expected error without a bounty usecase")
	}
	if _, err := New(log.NewNopLogger(), Config{Mode: gin.TestMode, BountyUC: stubBounty{}}); err == nil {
		t.Error("expected error without a port")
	}
}
