package bolt

import (
	"context"
	"errors"
	"fmt"

	"insighthub/internal/catalog/repository"
	"insighthub/internal/model"
	"insighthub/pkg/boltdb"
)

func (r *implRepository) GetCatalog(ctx context.Context) (model.Catalog, error) {
	var c model.Catalog
	if err := boltdb.GetJSON(r.db, KeyCatalog, &c); err != nil {
		if errors.Is(err, boltdb.ErrKeyNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToDecode, err)
	}
	return c, nil
}

func (r *implRepository) SaveCatalog(ctx context.Context, c model.Catalog) error {
	if c == nil {
		c = model.Catalog{}
	}
	if err := boltdb.PutJSON(r.db, KeyCatalog, c); err != nil {
		r.l.Errorf(ctx, "catalog repository: save failed: %v", err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}
	return nil
}
