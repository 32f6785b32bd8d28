package usecase

import (
	"context"
	"errors"

	"insighthub/internal/catalog"
	"insighthub/internal/catalog/repository"
	"insighthub/internal/model"
)

// Load replaces the in-memory state with the persisted catalog, or the default one when
// nothing usable is persisted.
func (uc *implUseCase) Load(ctx context.Context) model.Catalog {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.loadLocked(ctx)
	return uc.state.Clone()
}

// Snapshot returns a deep copy of the current state.
func (uc *implUseCase) Snapshot(ctx context.Context) catalog.Snapshot {
	uc.mu.RLock()
	if uc.loaded {
		defer uc.mu.RUnlock()
		return catalog.Snapshot{Catalog: uc.state.Clone(), Revision: uc.revision}
	}
	uc.mu.RUnlock()

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if !uc.loaded {
		uc.loadLocked(ctx)
	}
	return catalog.Snapshot{Catalog: uc.state.Clone(), Revision: uc.revision}
}

// FindEntry returns the entry with id and its parents.
func (uc *implUseCase) FindEntry(ctx context.Context, id string) (model.EntryRef, error) {
	snap := uc.Snapshot(ctx)
	ref, ok := snap.Catalog.FindEntry(id)
	if !ok {
		return model.EntryRef{}, catalog.ErrEntryNotFound
	}
	return ref, nil
}

func (uc *implUseCase) loadLocked(ctx context.Context) {
	c, err := uc.repo.GetCatalog(ctx)
	switch {
	case err == nil:
		uc.l.Debugf(ctx, "catalog.usecase.Load: %d categories from local storage", len(c))
	case errors.Is(err, repository.ErrNotFound):
		uc.l.Infof(ctx, "catalog.usecase.Load: nothing persisted, using default catalog")
		c = DefaultCatalog()
	default:
		uc.l.Warnf(ctx, "catalog.usecase.Load: falling back to default catalog: %v", err)
		c = DefaultCatalog()
	}

	uc.state = c
	uc.revision++
	uc.loaded = true
}
