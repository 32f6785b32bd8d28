package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	pkgLog "insighthub/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// RequestID tags the request context so every log line of the request carries the same id.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(pkgLog.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
