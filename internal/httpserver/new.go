package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"insighthub/internal/catalog"
	"insighthub/internal/editor"
	"insighthub/internal/middleware"
	"insighthub/internal/model"
	"insighthub/internal/projector"
	"insighthub/internal/settings"
	"insighthub/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	ready       func(ctx context.Context) error

	// Domains
	catalogUC   catalog.UseCase
	editorUC    editor.UseCase
	settingsUC  settings.UseCase
	projector   *projector.Projector
	defaultSort model.SortOption
	mw          middleware.Middleware
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string
	// ReadyCheck reports whether local storage is usable. Nil means always ready.
	ReadyCheck func(ctx context.Context) error

	CatalogUC   catalog.UseCase
	EditorUC    editor.UseCase
	SettingsUC  settings.UseCase
	Projector   *projector.Projector
	DefaultSort model.SortOption
	Middleware  middleware.Middleware
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		ready:       cfg.ReadyCheck,
		catalogUC:   cfg.CatalogUC,
		editorUC:    cfg.EditorUC,
		settingsUC:  cfg.SettingsUC,
		projector:   cfg.Projector,
		defaultSort: cfg.DefaultSort,
		mw:          cfg.Middleware,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if srv.projector == nil {
		srv.projector = projector.New(0, 0)
	}

	srv.mapHandlers()
	return srv, nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.catalogUC == nil || srv.editorUC == nil || srv.settingsUC == nil {
		return errors.New("catalog, editor and settings use cases are required")
	}
	return nil
}
