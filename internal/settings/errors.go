package settings

import "errors"

var (
	ErrInvalidSettings = errors.New("owner, repo and token are required")
	ErrPersist         = errors.New("failed to persist settings")
)
