package httpserver

import (
	"context"

	libraryhttp "shadergen-srv/internal/library/delivery/http"
	libraryPostgre "shadergen-srv/internal/library/repository/postgre"
	libraryRedis "shadergen-srv/internal/library/repository/redis"
	libraryUsecase "shadergen-srv/internal/library/usecase"
	"shadergen-srv/internal/library/repository"
	"shadergen-srv/internal/middleware"
	shaderhttp "shadergen-srv/internal/shader/delivery/http"
	shaderUsecase "shadergen-srv/internal/shader/usecase"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	// Initialize usecases
	shaderUC := shaderUsecase.New(srv.gemini, srv.l)

	libraryRepo := libraryPostgre.New(srv.l, srv.postgresDB)
	var libraryCache repository.CacheRepository
	if srv.redisClient != nil {
		libraryCache = libraryRedis.New(srv.redisClient, srv.l)
	}
	libraryUC := libraryUsecase.New(libraryRepo, libraryCache, srv.l)

	// Initialize HTTP handlers
	shaderHandler := shaderhttp.New(srv.l, shaderUC, srv.discord)
	libraryHandler := libraryhttp.New(srv.l, libraryUC, srv.discord)

	// Map routes
	root := srv.gin.Group("")
	shaderHandler.RegisterRoutes(root)
	libraryHandler.RegisterRoutes(root)

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))

	corsConfig := middleware.DefaultCORSConfig(srv.environment)
	srv.gin.Use(middleware.CORS(corsConfig))

	// Log CORS mode for visibility
	ctx := context.Background()
	if srv.environment == "production" {
		srv.l.Infof(ctx, "CORS mode: production (strict origins only)")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s (permissive)", srv.environment)
	}

	srv.gin.Use(mw.RequestID())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
