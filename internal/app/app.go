// Package app assembles the knowledge base from configuration. Both the API server and the
// CLI build on it so they share one storage file and one set of use cases.
package app

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"insighthub/config"
	"insighthub/internal/catalog"
	catalogBolt "insighthub/internal/catalog/repository/bolt"
	catalogUC "insighthub/internal/catalog/usecase"
	"insighthub/internal/editor"
	editorUC "insighthub/internal/editor/usecase"
	"insighthub/internal/httpserver"
	"insighthub/internal/middleware"
	"insighthub/internal/projector"
	"insighthub/internal/settings"
	settingsBolt "insighthub/internal/settings/repository/bolt"
	settingsUC "insighthub/internal/settings/usecase"
	remote "insighthub/internal/sync"
	"insighthub/pkg/boltdb"
	"insighthub/pkg/log"
)

type App struct {
	Config    *config.Config
	Logger    log.Logger
	Catalog   catalog.UseCase
	Editor    editor.UseCase
	Settings  settings.UseCase
	Projector *projector.Projector

	db *bbolt.DB
}

// New opens storage, seeds the sync settings from config and loads the catalog.
func New(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	// 1. Storage
	db, err := boltdb.Open(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	// 2. Settings
	settingsRepo := settingsBolt.New(db, l)
	settingsUseCase := settingsUC.New(l, settingsRepo)
	seeded, err := settingsUseCase.Seed(ctx, cfg.GitHub.SyncConfig())
	if err != nil {
		l.Warnf(ctx, "app: ignoring github settings from config: %v", err)
	} else if seeded {
		l.Infof(ctx, "app: sync settings seeded from config")
	}

	// 3. Catalog store
	catalogRepo := catalogBolt.New(db, l)
	catalogUseCase := catalogUC.New(l, catalogRepo)
	loaded := catalogUseCase.Load(ctx)
	l.Infof(ctx, "app: catalog loaded with %d categories, %d entries", len(loaded), loaded.EntryCount())

	// 4. Remote sync + editor
	pusher := remote.New(l, remote.Options{
		Path:          cfg.GitHub.Path,
		CommitMessage: cfg.GitHub.CommitMessage,
		BaseURL:       cfg.GitHub.BaseURL,
		Timeout:       cfg.GitHub.Timeout,
	})
	editorUseCase := editorUC.New(l, catalogUseCase, settingsUseCase, pusher)

	return &App{
		Config:    cfg,
		Logger:    l,
		Catalog:   catalogUseCase,
		Editor:    editorUseCase,
		Settings:  settingsUseCase,
		Projector: projector.New(cfg.View.CacheSize, cfg.View.CacheTTL),
		db:        db,
	}, nil
}

// HTTPServer builds the API server on top of the app.
func (a *App) HTTPServer() (*httpserver.HTTPServer, error) {
	return httpserver.New(a.Logger, httpserver.Config{
		Port:        a.Config.HTTPServer.Port,
		Mode:        a.Config.HTTPServer.Mode,
		Environment: a.Config.Environment.Name,
		ReadyCheck:  a.Ping,
		CatalogUC:   a.Catalog,
		EditorUC:    a.Editor,
		SettingsUC:  a.Settings,
		Projector:   a.Projector,
		DefaultSort: a.Config.View.DefaultSort,
		Middleware:  middleware.New(a.Logger, a.Config.RateLimit.WritesPerMin, a.Settings),
	})
}

// Ping checks that the storage file still answers reads.
func (a *App) Ping(ctx context.Context) error {
	return a.db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(boltdb.BucketState)) == nil {
			return fmt.Errorf("bucket %s missing", boltdb.BucketState)
		}
		return nil
	})
}

func (a *App) Close() error {
	return a.db.Close()
}
