package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github-bounty-agent/config"
	_ "github-bounty-agent/docs" // Swagger docs
	bountyUC "github-bounty-agent/internal/bounty/usecase"
	"github-bounty-agent/internal/comment"
	criteriaRepo "github-bounty-agent/internal/criteria/repository/memory"
	criteriaUC "github-bounty-agent/internal/criteria/usecase"
	"github-bounty-agent/internal/httpserver"
	ledgerRepo "github-bounty-agent/internal/ledger/repository"
	ledgerMemory "github-bounty-agent/internal/ledger/repository/memory"
	ledgerPostgre "github-bounty-agent/internal/ledger/repository/postgre"
	"github-bounty-agent/internal/model"
	reviewUC "github-bounty-agent/internal/review/usecase"
	"github-bounty-agent/internal/webhook"
	webhookUC "github-bounty-agent/internal/webhook/usecase"
	"github-bounty-agent/pkg/backend"
	"github-bounty-agent/pkg/github"
	"github-bounty-agent/pkg/llmprovider"
	"github-bounty-agent/pkg/log"
	"github-bounty-agent/pkg/nearagent"
)

// @title       GitHub Bounty Agent API
// @description GitHub webhook review and NEAR bounty payout agent.
// @version     1
// @host        localhost:3000
// @schemes     http
func main() {
	// 0. .env outside production
	if os.Getenv("ENVIRONMENT") != model.EnvironmentProduction {
		_ = godotenv.Load()
	}

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting GitHub Bounty Agent...")
	logger.Infof(ctx, "Environment: %s, network: %s", cfg.Environment.Name, cfg.Near.NetworkID)

	// 3. Outbound clients
	backendClient, err := backend.New(backend.Config{
		BaseURL:     cfg.Backend.URL,
		AgentSecret: cfg.MaintainerSecret,
		HTTPClient:  &http.Client{Timeout: duration(cfg.Backend.Timeout, backend.DefaultTimeout)},
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize backend client: %v", err)
		return
	}

	ghClient, err := github.New(github.Config{
		BaseURL:    cfg.GitHub.APIBaseURL,
		HTTPClient: &http.Client{Timeout: duration(cfg.GitHub.Timeout, github.DefaultTimeout)},
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize GitHub client: %v", err)
		return
	}

	agent, err := nearagent.New(nearagent.Config{
		BaseURL:    cfg.Near.AgentURL,
		HTTPClient: &http.Client{Timeout: duration(cfg.Near.Timeout, nearagent.DefaultTimeout)},
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize chain agent client: %v", err)
		return
	}

	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		return
	}
	llm := llmprovider.NewManager(providers, llmprovider.ManagerConfig(&cfg.LLM), logger)
	logger.Infof(ctx, "LLM providers ready, primary model %s", llm.Model())

	// 4. Payout ledger
	var ledger ledgerRepo.Repository = ledgerMemory.New()
	if cfg.Ledger.DSN != "" {
		pool, err := ledgerPostgre.Connect(ctx, cfg.Ledger.DSN)
		if err != nil {
			logger.Errorf(ctx, "Failed to connect payout ledger: %v", err)
			return
		}
		defer pool.Close()

		pg := ledgerPostgre.New(pool, logger)
		if err := pg.Migrate(ctx); err != nil {
			logger.Errorf(ctx, "Failed to migrate payout ledger: %v", err)
			return
		}
		ledger = pg
		logger.Info(ctx, "Payout ledger: postgres")
	} else {
		logger.Warn(ctx, "Payout ledger: in-memory, history is lost on restart")
	}

	// 5. Use cases
	publisher := comment.New(ghClient, logger)
	criteria := criteriaUC.New(criteriaRepo.New(), cfg.MaintainerSecret, logger)
	reviewer := reviewUC.New(llm, criteria, logger)

	payouts := bountyUC.New(bountyUC.Config{
		Network:          cfg.Near.NetworkID,
		Attempts:         cfg.Near.ReleaseAttempts,
		RetryDelay:       duration(cfg.Near.ReleaseRetryDelay, time.Second),
		MaintainerSecret: cfg.MaintainerSecret,
		FallbackToken:    cfg.GitHub.Token,
	}, bountyUC.Deps{
		Agent:     agent,
		Ledger:    ledger,
		Backend:   backendClient,
		GitHub:    ghClient,
		Publisher: publisher,
	}, logger)

	orchestrator := webhookUC.New(webhookUC.Config{
		TestContributorWallet: cfg.Near.TestContributorWallet,
	}, webhookUC.Deps{
		Backend:   backendClient,
		GitHub:    ghClient,
		Review:    reviewer,
		Bounty:    payouts,
		Publisher: publisher,
	}, logger)

	webhookHandler := webhook.NewHandler(orchestrator, webhook.SecurityConfig{
		Secret:          cfg.Webhook.Secret,
		AllowedIPs:      cfg.Webhook.AllowedIPs,
		RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
	}, logger)
	if cfg.Near.TestContributorWallet != "" {
		logger.Warnf(ctx, "TEST_CONTRIBUTOR_WALLET override active: %s", cfg.Near.TestContributorWallet)
	}

	// 6. Agent identity
	agentAccountID := cfg.Near.AgentAccountID
	if agentAccountID == "" {
		if id, err := agent.AccountID(ctx); err != nil {
			logger.Warnf(ctx, "Could not read agent account id: %v", err)
		} else {
			agentAccountID = id
		}
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		AgentAccountID: agentAccountID,
		CriteriaUC:     criteria,
		BountyUC:       payouts,
		WebhookHandler: webhookHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// duration parses a config duration, falling back to def.
func duration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
