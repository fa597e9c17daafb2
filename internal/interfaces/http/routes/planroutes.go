package routes

import (
	"github.com/gin-gonic/gin"

	"luma/internal/interfaces/http/handlers"
	"luma/internal/interfaces/http/middleware"
)

// PlanRouteConfig holds dependencies for plan routes.
type PlanRouteConfig struct {
	PlanHandler    *handlers.PlanHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupPlanRoutes configures plan routes.
func SetupPlanRoutes(api *gin.RouterGroup, cfg *PlanRouteConfig) {
	plans := api.Group("/plans")
	{
		// Public catalog endpoints (no authentication required)
		plans.GET("", cfg.PlanHandler.GetPublicPlans)
		plans.GET("/events", cfg.PlanHandler.WatchPlans)
	}

	admin := api.Group("/admin/plans")
	admin.Use(cfg.AuthMiddleware.RequireAdmin())
	{
		admin.GET("", cfg.PlanHandler.ListPlans)
		admin.GET("/:id", cfg.PlanHandler.GetPlan)
		admin.POST("", cfg.PlanHandler.CreatePlan)
		admin.PUT("/:id", cfg.PlanHandler.UpdatePlan)
		admin.PATCH("/:id/status", cfg.PlanHandler.UpdatePlanStatus)
		admin.DELETE("/:id", cfg.PlanHandler.DeletePlan)
	}
}
