package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/handlers"
)

func RegisterCatalogRoutes(r gin.IRouter) {
	catalog := r.Group("/catalog")
	{
		catalog.GET("", handlers.GetCatalog)
		catalog.GET("/:name", handlers.GetSpecies)
		catalog.GET("/:name/guide", handlers.GetSpeciesGuide)
	}

	r.GET("/environment", handlers.GetEnvironment)

	recommendations := r.Group("/recommendations")
	{
		recommendations.GET("", handlers.GetRecommendations)
		recommendations.GET("/balcony", handlers.GetBalconyRecommendations)
	}
}
