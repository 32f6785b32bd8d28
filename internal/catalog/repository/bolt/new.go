package bolt

import (
	"go.etcd.io/bbolt"

	"insighthub/internal/catalog/repository"
	pkgLog "insighthub/pkg/log"
)

// KeyCatalog is the fixed key of the catalog blob.
const KeyCatalog = "insighthub_custom_knowledge"

type implRepository struct {
	db *bbolt.DB
	l  pkgLog.Logger
}

// New creates a bolt-backed catalog repository.
func New(db *bbolt.DB, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
