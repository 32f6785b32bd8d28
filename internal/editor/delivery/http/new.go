package http

import (
	"insighthub/internal/editor"
	pkgLog "insighthub/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc editor.UseCase
}

// New creates the write-side HTTP handler.
func New(l pkgLog.Logger, uc editor.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
