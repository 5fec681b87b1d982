package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/handlers"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/middleware"
)

func RegisterProfileRoutes(r gin.IRouter) {
	profile := r.Group("/profile")
	profile.Use(middleware.AuthMiddleware())
	{
		profile.GET("", handlers.GetProfile)
		profile.PUT("", handlers.UpdateProfile)
		profile.POST("/streak", handlers.RecordStreak)
		profile.DELETE("", handlers.ResetProfile)
	}

	r.GET("/activity", middleware.AuthMiddleware(), handlers.GetActivityFeed)
}
