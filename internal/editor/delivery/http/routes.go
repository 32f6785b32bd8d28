package http

import (
	"github.com/gin-gonic/gin"

	"insighthub/internal/middleware"
)

// RegisterRoutes maps the entry write routes. All of them require the owner token; mutations
// also go through the write rate limiter.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	entries := rg.Group("/entries")
	{
		entries.GET("/:id/form", mw.RequireOwner(), h.Form)
		entries.POST("", mw.RateLimitWrites(), mw.RequireOwner(), h.Create)
		entries.PUT("/:id", mw.RateLimitWrites(), mw.RequireOwner(), h.Update)
		entries.DELETE("/:id", mw.RateLimitWrites(), mw.RequireOwner(), h.Delete)
	}
}
