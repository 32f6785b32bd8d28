package http

import (
	"github.com/gin-gonic/gin"

	"insighthub/internal/middleware"
)

// RegisterRoutes maps the settings routes. Once a token is stored, changing or clearing it
// requires presenting that token.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	s := rg.Group("/settings")
	{
		s.GET("", h.Get)
		s.PUT("", mw.RateLimitWrites(), mw.RequireOwnerIfSet(), h.Save)
		s.DELETE("", mw.RateLimitWrites(), mw.RequireOwnerIfSet(), h.Clear)
	}
}
