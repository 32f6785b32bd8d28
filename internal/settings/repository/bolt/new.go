package bolt

import (
	"go.etcd.io/bbolt"

	"insighthub/internal/settings/repository"
	pkgLog "insighthub/pkg/log"
)

// KeyConfig is the fixed key of the sync config blob.
const KeyConfig = "gh_config"

type implRepository struct {
	db *bbolt.DB
	l  pkgLog.Logger
}

func New(db *bbolt.DB, l pkgLog.Logger) repository.Repository {
	return &implRepository{db: db, l: l}
}
