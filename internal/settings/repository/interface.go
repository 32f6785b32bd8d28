package repository

import (
	"context"

	"insighthub/internal/model"
)

type Repository interface {
	// GetConfig returns ErrNotFound when nothing is stored.
	GetConfig(ctx context.Context) (model.SyncConfig, error)
	SaveConfig(ctx context.Context, cfg model.SyncConfig) error
	DeleteConfig(ctx context.Context) error
}
