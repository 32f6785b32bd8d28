package settings

import (
	"context"

	"insighthub/internal/model"
)

// UseCase reads and writes the remote sync configuration.
type UseCase interface {
	// Get returns the active config. The zero value means guest mode.
	Get(ctx context.Context) model.SyncConfig
	Save(ctx context.Context, input SaveInput) (model.SyncConfig, error)
	// Clear forgets the stored credentials.
	Clear(ctx context.Context) error
	// Seed stores cfg only when nothing is persisted yet and cfg carries a token.
	Seed(ctx context.Context, cfg model.SyncConfig) (bool, error)
}
