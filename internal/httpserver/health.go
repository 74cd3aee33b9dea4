package httpserver

import (
	"github.com/gin-gonic/gin"

	"github-bounty-agent/internal/ledger"
	"github-bounty-agent/pkg/response"
)

// ServiceName identifies the service in liveness responses.
const ServiceName = "github-bounty-agent"

type healthResp struct {
	Status         string       `json:"status"`
	Agent          string       `json:"agent"`
	AgentAccountID string       `json:"agentAccountId"`
	Payouts        ledger.Stats `json:"payouts"`
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Agent identity and payout counters
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp
// @Failure 500 {object} response.ErrResp
// @Router /api/health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	st, err := srv.bountyUC.Stats(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "httpserver.healthCheck: bountyUC.Stats: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, healthResp{
		Status:         "ok",
		Agent:          "registered",
		AgentAccountID: srv.agentAccountID,
		Payouts:        st,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /api/live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": ServiceName,
	})
}
