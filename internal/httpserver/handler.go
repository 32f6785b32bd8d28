package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	catalogHTTP "insighthub/internal/catalog/delivery/http"
	editorHTTP "insighthub/internal/editor/delivery/http"
	"insighthub/internal/model"
	settingsHTTP "insighthub/internal/settings/delivery/http"
)

func (srv *HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID())
	if srv.mode != gin.ReleaseMode {
		srv.gin.Use(gin.Logger())
	}

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes wires each domain's delivery layer under /api/v1.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	// Catalog reads: GET /catalog, GET /entries/:id
	catalogHTTP.RegisterRoutes(api, catalogHTTP.New(srv.l, srv.catalogUC, srv.projector, srv.defaultSort))

	// Entry writes: POST/PUT/DELETE /entries
	editorHTTP.RegisterRoutes(api, editorHTTP.New(srv.l, srv.editorUC), srv.mw)

	// Sync settings: GET/PUT/DELETE /settings
	settingsHTTP.RegisterRoutes(api, settingsHTTP.New(srv.l, srv.settingsUC), srv.mw)

	srv.l.Infof(ctx, "Domain routes registered under /api/v1")
}
