package catalog

import "insighthub/internal/model"

// UpsertInput is the input for an atomic entry replace.
type UpsertInput struct {
	Entry            model.Entry
	CategoryTitle    string
	SubCategoryTitle string
	PreviousID       string // empty for a new entry
}

// Snapshot is a point-in-time copy of the catalog.
// Revision increases by one on every committed change.
type Snapshot struct {
	Catalog  model.Catalog
	Revision uint64
}

// RemoveOutput is the result of Remove.
type RemoveOutput struct {
	Catalog model.Catalog
	Removed bool
}
