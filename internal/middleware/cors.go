package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/config"
)

// CORSMiddleware allows the configured frontend origin plus the local dev
// server. Credentials are allowed because the frontend sends the bearer
// token from a logged-in context.
func CORSMiddleware() gin.HandlerFunc {
	origins := []string{"http://localhost:3000"}
	if config.AppConfig.FrontendURL != "" {
		origins = append([]string{config.AppConfig.FrontendURL}, origins...)
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
