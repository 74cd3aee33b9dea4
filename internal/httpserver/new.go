package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github-bounty-agent/internal/bounty"
	"github-bounty-agent/internal/criteria"
	"github-bounty-agent/internal/webhook"
	"github-bounty-agent/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Identity reported by /api/health
	agentAccountID string

	// Domains
	criteriaUC     criteria.UseCase
	bountyUC       bounty.UseCase
	webhookHandler *webhook.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	AgentAccountID string

	CriteriaUC     criteria.UseCase
	BountyUC       bounty.UseCase
	WebhookHandler *webhook.Handler
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		agentAccountID: cfg.AgentAccountID,
		criteriaUC:     cfg.CriteriaUC,
		bountyUC:       cfg.BountyUC,
		webhookHandler: cfg.WebhookHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.bountyUC == nil {
		return errors.New("bounty usecase is required")
	}
	return nil
}

// Handler exposes the gin engine, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
