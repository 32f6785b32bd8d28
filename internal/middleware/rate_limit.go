package middleware

import (
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"insighthub/pkg/response"
)

const (
	maxLimiterKeys = 1000
	limiterTTL     = 5 * time.Minute
)

// RateLimitWrites throttles mutating requests per client IP.
func (m Middleware) RateLimitWrites() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}
		if err := m.limiter.Allow(c.ClientIP()); err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimitWrites: %v", err)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

type rateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(perMin int) *rateLimiter {
	if perMin <= 0 {
		return nil
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxLimiterKeys, nil, limiterTTL),
		rate:     rate.Limit(float64(perMin) / 60.0),
		burst:    max(1, perMin/10),
	}
}

func (rl *rateLimiter) Allow(key string) error {
	rl.mu.Lock()
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	rl.mu.Unlock()

	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}
