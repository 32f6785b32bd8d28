package usecase

import (
	"sync"

	"insighthub/internal/catalog/repository"
	"insighthub/internal/model"
	pkgLog "insighthub/pkg/log"
)

// implUseCase is the catalog store. It is the single owner of the in-memory catalog.
type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository

	mu       sync.RWMutex
	state    model.Catalog
	revision uint64
	loaded   bool
}

// New creates a new catalog UseCase. Call Load before serving reads; Snapshot loads lazily otherwise.
func New(l pkgLog.Logger, repo repository.Repository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
