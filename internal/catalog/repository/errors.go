package repository

import "errors"

var (
	ErrNotFound       = errors.New("catalog not persisted")
	ErrFailedToDecode = errors.New("failed to decode catalog")
	ErrFailedToSave   = errors.New("failed to save catalog")
)
