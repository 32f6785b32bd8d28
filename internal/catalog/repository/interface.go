package repository

import (
	"context"

	"insighthub/internal/model"
)

// Repository is the local persistence of the catalog blob.
type Repository interface {
	// GetCatalog returns ErrNotFound when nothing has been saved yet.
	GetCatalog(ctx context.Context) (model.Catalog, error)
	SaveCatalog(ctx context.Context, c model.Catalog) error
}
