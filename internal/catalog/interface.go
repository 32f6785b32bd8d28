package catalog

import (
	"context"

	"insighthub/internal/model"
)

// UseCase owns the in-memory catalog and mirrors every mutation to local storage.
type UseCase interface {
	// Load reads the persisted catalog, falling back to the built-in default. It never fails.
	Load(ctx context.Context) model.Catalog

	// Snapshot returns a deep copy of the current catalog and its revision.
	Snapshot(ctx context.Context) Snapshot

	// Upsert atomically replaces PreviousID (if any) with Entry under the named category/subcategory.
	Upsert(ctx context.Context, input UpsertInput) (model.Catalog, error)

	// Remove deletes the entry with id. Unknown ids are a no-op.
	Remove(ctx context.Context, id string) (RemoveOutput, error)

	// FindEntry returns the entry and its parent titles.
	FindEntry(ctx context.Context, id string) (model.EntryRef, error)
}
