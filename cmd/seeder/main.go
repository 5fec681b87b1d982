package main

import (
	"log"

	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/config"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/database"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/models"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/seeds"
)

func main() {
	config.LoadConfig()
	database.Connect()

	log.Println("🔄 Running migrations (just in case)...")
	database.DB.AutoMigrate(
		&models.UserProfile{},
		&models.TrackedPlant{},
		&models.WateringEvent{},
		&models.UserBadge{},
		&models.UserActivity{},
	)

	user, err := seeds.GetOrCreateDemoUser()
	if err != nil {
		log.Fatalf("❌ Failed to create demo user: %v", err)
	}
	log.Printf("👉 Using Demo User: %s (%s)", user.Username, user.ID)

	seeds.SeedDemoGarden(user)

	log.Println("✅ Database Seeding Complete!")
}
