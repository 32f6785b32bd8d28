package usecase

import (
	"context"
	"fmt"

	"insighthub/internal/catalog"
	"insighthub/internal/model"
)

// Upsert computes the replaced catalog on a private copy, persists it, and only then swaps it in.
func (uc *implUseCase) Upsert(ctx context.Context, input catalog.UpsertInput) (model.Catalog, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.loaded {
		uc.loadLocked(ctx)
	}

	next := uc.state.Replace(input.PreviousID, input.Entry, input.CategoryTitle, input.SubCategoryTitle)
	if err := uc.commitLocked(ctx, next); err != nil {
		return nil, err
	}

	uc.l.Infof(ctx, "catalog.usecase.Upsert: entry %s under %q/%q", input.Entry.ID, input.CategoryTitle, input.SubCategoryTitle)
	return next.Clone(), nil
}

// Remove deletes the entry with id. A missing id changes nothing and writes nothing.
func (uc *implUseCase) Remove(ctx context.Context, id string) (catalog.RemoveOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.loaded {
		uc.loadLocked(ctx)
	}

	next, removed := uc.state.WithoutEntry(id)
	if !removed {
		uc.l.Debugf(ctx, "catalog.usecase.Remove: %s not found, nothing to do", id)
		return catalog.RemoveOutput{Catalog: uc.state.Clone()}, nil
	}

	if err := uc.commitLocked(ctx, next); err != nil {
		return catalog.RemoveOutput{}, err
	}

	uc.l.Infof(ctx, "catalog.usecase.Remove: entry %s removed", id)
	return catalog.RemoveOutput{Catalog: next.Clone(), Removed: true}, nil
}

func (uc *implUseCase) commitLocked(ctx context.Context, next model.Catalog) error {
	if err := uc.repo.SaveCatalog(ctx, next); err != nil {
		uc.l.Errorf(ctx, "catalog.usecase.commit SaveCatalog: %v", err)
		return fmt.Errorf("%w: %v", catalog.ErrPersist, err)
	}
	uc.state = next
	uc.revision++
	return nil
}
