package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the bounty endpoints onto rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	b := rg.Group("/bounty")
	b.GET("/history", h.History)
	b.POST("/release", h.Release)
	b.GET("/:owner/:repo", h.Balance)

	rg.POST("/repo/register", h.RegisterRepo)
}
