package editor

import "errors"

var (
	ErrValidation = errors.New("category, subcategory and title are required")
	ErrReadOnly   = errors.New("read-only mode: configure a sync token to edit")
)
