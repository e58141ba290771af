package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Bassir-Elhoussein/gymapp/internal/interfaces/http/handlers"
)

// PlanRouteConfig holds dependencies for plan routes.
type PlanRouteConfig struct {
	PlanHandler *handlers.PlanHandler
}

// SetupPlanRoutes configures subscription plan routes.
func SetupPlanRoutes(api *gin.RouterGroup, cfg *PlanRouteConfig) {
	plans := api.Group("/plans")
	{
		plans.POST("", cfg.PlanHandler.CreatePlan)
		plans.GET("", cfg.PlanHandler.ListPlans)
		plans.GET("/:id", cfg.PlanHandler.GetPlan)
		plans.PUT("/:id", cfg.PlanHandler.UpdatePlan)
	}
}
