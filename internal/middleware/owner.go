package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"insighthub/pkg/response"
)

const bearerPrefix = "Bearer "

// RequireOwner lets a request through only when it presents the stored token as a bearer
// credential. Guest mode (no stored token) rejects everything.
func (m Middleware) RequireOwner() gin.HandlerFunc {
	return m.ownerGate(false)
}

// RequireOwnerIfSet behaves like RequireOwner once a token is stored, and lets everything
// through while none is, so the first login can happen.
func (m Middleware) RequireOwnerIfSet() gin.HandlerFunc {
	return m.ownerGate(true)
}

func (m Middleware) ownerGate(allowUnset bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var stored string
		if m.owner != nil {
			stored = m.owner.Get(ctx).Token
		}
		if stored == "" {
			if allowUnset {
				c.Next()
				return
			}
			response.Forbidden(c)
			return
		}

		presented, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok || subtle.ConstantTimeCompare([]byte(presented), []byte(stored)) != 1 {
			m.l.Warnf(ctx, "middleware.ownerGate: rejected %s %s from %s", c.Request.Method, c.FullPath(), c.ClientIP())
			response.Forbidden(c)
			return
		}
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}
