package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the criteria endpoints onto rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("/criteria", h.Get)
	rg.POST("/criteria", h.Set)
}
