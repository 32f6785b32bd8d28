package repository

import "errors"

var (
	ErrNotFound       = errors.New("sync config not found")
	ErrFailedToDecode = errors.New("failed to decode sync config")
	ErrFailedToSave   = errors.New("failed to save sync config")
)
