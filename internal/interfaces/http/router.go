// Package http assembles the Gin engine: repositories, use cases, handlers
// and middleware are wired here so main stays a thin shell.
package http

import (
	"github.com/gin-gonic/gin"

	authusecases "luma/internal/application/auth/usecases"
	dlusecases "luma/internal/application/download/usecases"
	planusecases "luma/internal/application/plan/usecases"
	"luma/internal/infrastructure/auth"
	"luma/internal/infrastructure/config"
	"luma/internal/infrastructure/database"
	"luma/internal/infrastructure/planstore"
	"luma/internal/infrastructure/repository"
	"luma/internal/interfaces/http/handlers"
	"luma/internal/interfaces/http/middleware"
	"luma/internal/interfaces/http/routes"
	"luma/internal/shared/logger"
	"luma/internal/shared/services/markdown"
)

type Router struct {
	engine *gin.Engine
}

// NewRouter creates a new HTTP router with all dependencies.
func NewRouter(store *database.Store, plans *planstore.Store, cfg *config.Config, log logger.Interface) *Router {
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	hasher := auth.NewBcryptPasswordHasher(0)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	markdownService := markdown.NewService()
	downloadRepo := repository.NewDownloadRepository(store, log)

	planHandler := handlers.NewPlanHandler(
		planusecases.NewCreatePlanUseCase(plans, log),
		planusecases.NewUpdatePlanUseCase(plans, log),
		planusecases.NewTogglePlanStatusUseCase(plans, log),
		planusecases.NewDeletePlanUseCase(plans, log),
		planusecases.NewGetPlanUseCase(plans, log),
		planusecases.NewListPlansUseCase(plans, log),
		planusecases.NewGetPublicPlansUseCase(plans, markdownService, log),
		plans,
		log,
	)

	downloadHandler := handlers.NewDownloadHandler(
		dlusecases.NewSaveDownloadUseCase(downloadRepo, cfg.Download.MaxBlobSizeMB, log),
		dlusecases.NewListDownloadsUseCase(downloadRepo, log),
		dlusecases.NewGetDownloadUseCase(downloadRepo, log),
		dlusecases.NewDeleteDownloadUseCase(downloadRepo, log),
		log,
	)

	authHandler := handlers.NewAuthHandler(
		authusecases.NewLoginUseCase(cfg.Auth.AdminPasswordHash, hasher, jwtService, log),
		log,
	)

	api := engine.Group("/api")
	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{AuthHandler: authHandler})
	routes.SetupPlanRoutes(api, &routes.PlanRouteConfig{PlanHandler: planHandler, AuthMiddleware: authMiddleware})
	routes.SetupDownloadRoutes(api, &routes.DownloadRouteConfig{DownloadHandler: downloadHandler})

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return &Router{engine: engine}
}

// Engine exposes the underlying Gin engine for serving and for tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
