package bolt

import (
	"context"
	"errors"
	"fmt"

	"insighthub/internal/model"
	"insighthub/internal/settings/repository"
	"insighthub/pkg/boltdb"
)

func (r *implRepository) GetConfig(ctx context.Context) (model.SyncConfig, error) {
	var cfg model.SyncConfig
	if err := boltdb.GetJSON(r.db, KeyConfig, &cfg); err != nil {
		if errors.Is(err, boltdb.ErrKeyNotFound) {
			return model.SyncConfig{}, repository.ErrNotFound
		}
		return model.SyncConfig{}, fmt.Errorf("%w: %v", repository.ErrFailedToDecode, err)
	}
	return cfg, nil
}

func (r *implRepository) SaveConfig(ctx context.Context, cfg model.SyncConfig) error {
	if err := boltdb.PutJSON(r.db, KeyConfig, cfg); err != nil {
		r.l.Errorf(ctx, "settings repository: save failed: %v", err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}
	return nil
}

func (r *implRepository) DeleteConfig(ctx context.Context) error {
	if err := boltdb.Delete(r.db, KeyConfig); err != nil {
		r.l.Errorf(ctx, "settings repository: delete failed: %v", err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}
	return nil
}
