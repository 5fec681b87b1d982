package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/config"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/database"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/handlers"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/middleware"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/migrations"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/models"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/routes"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/services"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/store"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/pkg/logger"
)

func main() {
	// 0. Load Config & Initialize Logger
	config.LoadConfig()

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	logger.Info().Str("environment", env).Msg("Starting AirCare Backend...")

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 1. Connect storage. The file backend can run without a database; the
	// gorm backend cannot.
	useDatabase := config.AppConfig.StoreBackend == "gorm" || config.AppConfig.DatabaseURL != ""
	if useDatabase {
		database.Connect()

		logger.Info().Msg("🔄 Running Database Migrations...")
		if err := database.DB.AutoMigrate(
			&models.UserProfile{},
			&models.TrackedPlant{},
			&models.WateringEvent{},
			&models.UserBadge{},
			&models.UserActivity{},
		); err != nil {
			logger.Fatal().Err(err).Msg("Failed to run database migrations")
		}
		if err := migrations.NewMigrator(database.DB).Run(); err != nil {
			logger.Fatal().Err(err).Msg("Failed to run data migrations")
		}
		logger.Info().Msg("✅ Database Migrations Complete")
	}
	database.InitRedis()

	// 2. Pick the session store backend
	var sessionStore store.SessionStore
	switch config.AppConfig.StoreBackend {
	case "file":
		fileStore, err := store.NewFileStore(config.AppConfig.DataDir)
		if err != nil {
			logger.Fatal().Err(err).Str("dir", config.AppConfig.DataDir).Msg("Failed to open file store")
		}
		sessionStore = fileStore
		logger.Info().Str("dir", config.AppConfig.DataDir).Msg("Using file session store")
	case "gorm":
		sessionStore = store.NewGormStore(database.DB)
		logger.Info().Msg("Using gorm session store")
	default:
		logger.Fatal().Str("backend", config.AppConfig.StoreBackend).Msg("Unknown STORE_BACKEND (want gorm or file)")
	}

	handlers.Init(services.NewSessionManager(sessionStore))

	// 3. Setup Router
	r := gin.New()

	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.ErrorHandlerMiddleware())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.GeneralRateLimit())

	// 4. Register Routes
	api := r.Group("/api")
	{
		routes.RegisterAuthRoutes(api)
		routes.RegisterCatalogRoutes(api)
		routes.RegisterPlantRoutes(api)
		routes.RegisterProfileRoutes(api)
	}

	// Health check with DB and Redis status
	r.GET("/health", func(c *gin.Context) {
		dbStatus := "ok"
		redisStatus := "ok"

		if database.DB != nil {
			sqlDB, err := database.DB.DB()
			if err != nil || sqlDB.Ping() != nil {
				dbStatus = "error"
			}
		} else {
			dbStatus = "not configured"
		}

		if database.Redis != nil {
			if _, err := database.Redis.Ping(context.Background()).Result(); err != nil {
				redisStatus = "error"
			}
		} else {
			redisStatus = "not configured"
		}

		status := "ok"
		if dbStatus == "error" || redisStatus == "error" {
			status = "degraded"
		}

		c.JSON(200, gin.H{
			"status":  status,
			"message": "AirCare Backend is running 🌱",
			"checks": gin.H{
				"database": dbStatus,
				"redis":    redisStatus,
			},
		})
	})

	// 5. Start Server with graceful shutdown
	port := config.AppConfig.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("port", port).Str("env", env).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("🛑 Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("✅ Server exited gracefully")
}
