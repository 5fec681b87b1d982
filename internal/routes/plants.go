package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/handlers"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/middleware"
)

func RegisterPlantRoutes(r gin.IRouter) {
	plants := r.Group("/plants")
	plants.Use(middleware.AuthMiddleware())
	{
		plants.POST("", handlers.CreatePlant)
		plants.GET("", handlers.GetPlants)
		plants.POST("/:id/water", handlers.WaterPlant)
		plants.PUT("/:id/status", handlers.UpdatePlantStatus)
		plants.DELETE("/:id", handlers.DeletePlant)
	}

	impact := r.Group("/impact")
	impact.Use(middleware.AuthMiddleware())
	{
		impact.GET("", handlers.GetImpact)
		impact.GET("/projection", handlers.GetImpactProjection)
	}

	r.POST("/doctor/diagnose", handlers.DiagnosePlant)
}
