package http

import (
	"insighthub/internal/settings"
	pkgLog "insighthub/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc settings.UseCase
}

func New(l pkgLog.Logger, uc settings.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
