package middleware

import (
	"context"

	"insighthub/internal/model"
	pkgLog "insighthub/pkg/log"
)

// OwnerSource returns the stored sync config whose token identifies the owner.
type OwnerSource interface {
	Get(ctx context.Context) model.SyncConfig
}

type Middleware struct {
	l       pkgLog.Logger
	limiter *rateLimiter
	owner   OwnerSource
}

// New creates the shared middleware set. writesPerMin <= 0 disables write limiting.
func New(l pkgLog.Logger, writesPerMin int, owner OwnerSource) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(writesPerMin),
		owner:   owner,
	}
}
