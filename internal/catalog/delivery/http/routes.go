package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the read-only catalog routes.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("/catalog", h.List)
	rg.GET("/entries/:id", h.Detail)
}
