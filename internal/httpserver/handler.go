package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	bountyHTTP "github-bounty-agent/internal/bounty/delivery/http"
	criteriaHTTP "github-bounty-agent/internal/criteria/delivery/http"
	"github-bounty-agent/internal/middleware"
	"github-bounty-agent/internal/model"
	"github-bounty-agent/internal/webhook"
	"github-bounty-agent/pkg/response"
)

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()

	srv.gin.NoRoute(response.NotFound)
}

func (srv HTTPServer) registerMiddlewares() {
	mw := middleware.New(srv.l)
	srv.gin.Use(gin.Recovery(), mw.RequestID(), mw.Logger())

	ctx := context.Background()
	if srv.environment == model.EnvironmentProduction {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/api/health", srv.healthCheck)
	srv.gin.GET("/api/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api.
//
// Pattern to follow when adding a new domain:
//  1. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  2. Register Routes:     mydomainHTTP.RegisterRoutes(api, h)
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api")

	if srv.webhookHandler != nil {
		webhook.RegisterRoutes(api, srv.webhookHandler)
		srv.l.Infof(ctx, "Webhook route registered at POST /api/webhook")
	} else {
		srv.l.Warnf(ctx, "Webhook handler not configured, skipping webhook route")
	}

	bountyHTTP.RegisterRoutes(api, bountyHTTP.New(srv.l, srv.bountyUC))

	if srv.criteriaUC != nil {
		criteriaHTTP.RegisterRoutes(api, criteriaHTTP.New(srv.l, srv.criteriaUC))
	}
}
