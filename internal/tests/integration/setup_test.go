package integration

import (
	"fmt"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/config"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/database"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/handlers"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/models"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/routes"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/services"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/store"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/pkg/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// 0. Init Config for JWT
	config.AppConfig = &config.Config{
		JWTSecret:    "test_secret_key_12345",
		StoreBackend: "gorm",
	}
	logger.Init("development")

	// 1. One in-memory database per test, shared across connections
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	testDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test DB: %v", err)
	}

	// 2. Run Migrations
	if err := testDB.AutoMigrate(
		&models.UserProfile{},
		&models.TrackedPlant{},
		&models.WateringEvent{},
		&models.UserBadge{},
		&models.UserActivity{},
	); err != nil {
		t.Fatalf("Failed to migrate test DB: %v", err)
	}

	// 3. Handlers use the global DB and session manager
	database.DB = testDB
	database.Redis = nil
	handlers.Init(services.NewSessionManager(store.NewGormStore(testDB)))

	return testDB
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	// Mimic main.go structure
	api := r.Group("/api")
	{
		routes.RegisterAuthRoutes(api)
		routes.RegisterCatalogRoutes(api)
		routes.RegisterPlantRoutes(api)
		routes.RegisterProfileRoutes(api)
	}

	return r
}
