package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"insighthub/internal/model"
	"insighthub/internal/settings"
	"insighthub/internal/settings/repository"
)

func (uc *implUseCase) Get(ctx context.Context) model.SyncConfig {
	cfg, err := uc.repo.GetConfig(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			uc.l.Warnf(ctx, "settings.Get: ignoring stored config: %v", err)
		}
		return model.SyncConfig{}
	}
	return cfg
}

func (uc *implUseCase) Save(ctx context.Context, input settings.SaveInput) (model.SyncConfig, error) {
	cfg := model.SyncConfig{
		Owner:  strings.TrimSpace(input.Owner),
		Repo:   strings.TrimSpace(input.Repo),
		Branch: strings.TrimSpace(input.Branch),
		Token:  strings.TrimSpace(input.Token),
	}

	var missing []string
	if cfg.Owner == "" {
		missing = append(missing, "owner")
	}
	if cfg.Repo == "" {
		missing = append(missing, "repo")
	}
	if cfg.Token == "" {
		missing = append(missing, "token")
	}
	if len(missing) > 0 {
		return model.SyncConfig{}, fmt.Errorf("%w: missing %s", settings.ErrInvalidSettings, strings.Join(missing, ", "))
	}
	cfg.Branch = cfg.BranchOrDefault()

	if err := uc.repo.SaveConfig(ctx, cfg); err != nil {
		return model.SyncConfig{}, fmt.Errorf("%w: %v", settings.ErrPersist, err)
	}

	uc.l.Infof(ctx, "settings.Save: sync target %s/%s@%s", cfg.Owner, cfg.Repo, cfg.Branch)
	return cfg, nil
}

func (uc *implUseCase) Clear(ctx context.Context) error {
	if err := uc.repo.DeleteConfig(ctx); err != nil {
		return fmt.Errorf("%w: %v", settings.ErrPersist, err)
	}
	uc.l.Infof(ctx, "settings.Clear: switched to guest mode")
	return nil
}

func (uc *implUseCase) Seed(ctx context.Context, cfg model.SyncConfig) (bool, error) {
	if !cfg.IsOwner() {
		return false, nil
	}
	if _, err := uc.repo.GetConfig(ctx); !errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if _, err := uc.Save(ctx, settings.SaveInput{
		Owner:  cfg.Owner,
		Repo:   cfg.Repo,
		Branch: cfg.Branch,
		Token:  cfg.Token,
	}); err != nil {
		return false, err
	}
	return true, nil
}
