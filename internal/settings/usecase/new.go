package usecase

import (
	"insighthub/internal/settings"
	"insighthub/internal/settings/repository"
	pkgLog "insighthub/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

func New(l pkgLog.Logger, repo repository.Repository) settings.UseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
