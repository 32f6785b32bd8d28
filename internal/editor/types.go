package editor

import "insighthub/internal/model"

// SyncWarning is reported when the local save succeeded but the remote push did not.
const SyncWarning = "Synced locally, but cloud update failed. Check your token scope."

// SaveInput is the entry form. EditingID is empty when creating.
type SaveInput struct {
	EditingID   string
	Category    string
	SubCategory string
	Title       string
	Description string
	Content     string
	URL         string
}

type SaveOutput struct {
	Entry   model.Entry
	Catalog model.Catalog
	Synced  bool
	Warning string
}

// DeleteOutput reports Removed=false for unknown ids; nothing is pushed then.
type DeleteOutput struct {
	Catalog model.Catalog
	Removed bool
	Synced  bool
	Warning string
}
