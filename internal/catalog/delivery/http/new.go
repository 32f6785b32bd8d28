package http

import (
	"insighthub/internal/catalog"
	"insighthub/internal/model"
	"insighthub/internal/projector"
	pkgLog "insighthub/pkg/log"
)

type handler struct {
	l           pkgLog.Logger
	uc          catalog.UseCase
	projector   *projector.Projector
	defaultSort model.SortOption
}

// New creates the read-side HTTP handler. defaultSort applies when the sort query is absent.
func New(l pkgLog.Logger, uc catalog.UseCase, p *projector.Projector, defaultSort model.SortOption) *handler {
	if defaultSort == "" {
		defaultSort = model.SortAlphaAsc
	}
	return &handler{
		l:           l,
		uc:          uc,
		projector:   p,
		defaultSort: defaultSort,
	}
}
