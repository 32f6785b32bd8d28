package catalog

import "errors"

var (
	ErrEntryNotFound = errors.New("entry not found")
	ErrPersist       = errors.New("failed to persist catalog")
)
