package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"voice-shopping-list/internal/middleware"
	"voice-shopping-list/internal/model"
	slRepo "voice-shopping-list/internal/shoppinglist/repository/postgre"
	slUC "voice-shopping-list/internal/shoppinglist/usecase"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	// Per-request logging only outside production.
	if srv.environment != string(model.EnvironmentProduction) {
		srv.gin.Use(gin.Logger())
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes wires the domains. The shopping list use case is
// built once and shared: the voice engine drives the same domain logic
// the REST surface exposes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	api := srv.gin.Group("/api")
	mw := middleware.New(srv.l, srv.rateLimitPerMin)

	repo := slRepo.New(srv.postgresDB, srv.l)
	listsUC := slUC.New(repo, srv.l)

	if err := srv.setupShoppingListDomain(ctx, api, mw, listsUC); err != nil {
		return err
	}
	if err := srv.setupVoiceDomain(ctx, api, listsUC); err != nil {
		return err
	}

	return nil
}
