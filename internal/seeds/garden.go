package seeds

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/catalog"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/database"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/models"
)

// SeedDemoGarden creates a small mixed garden for the demo user: a few
// outdoor trees at different stages plus balcony plants, with watering
// history spread over the past weeks.
func SeedDemoGarden(user models.UserProfile) {
	log.Println("🌳 Seeding Demo Garden...")

	var count int64
	database.DB.Model(&models.TrackedPlant{}).Where("user_id = ?", user.ID).Count(&count)
	if count > 0 {
		log.Printf("   ⏭️  Garden already seeded (%d plants), skipping", count)
		return
	}

	now := time.Now()
	entries := []struct {
		species    string
		plantedAgo time.Duration
		stage      models.GrowthStage
		health     models.HealthStatus
		waterings  []time.Duration // ago
	}{
		{"Neem", 120 * 24 * time.Hour, models.StageSapling, models.HealthExcellent,
			[]time.Duration{10 * 24 * time.Hour, 5 * 24 * time.Hour, 24 * time.Hour}},
		{"Banyan", 400 * 24 * time.Hour, models.StageYoungTree, models.HealthGood,
			[]time.Duration{14 * 24 * time.Hour, 7 * 24 * time.Hour}},
		{"Mango", 45 * 24 * time.Hour, models.StageSeedling, models.HealthGood,
			[]time.Duration{3 * 24 * time.Hour, 24 * time.Hour}},
		{"Tulsi", 60 * 24 * time.Hour, models.StageSapling, models.HealthExcellent,
			[]time.Duration{2 * 24 * time.Hour}},
		{"Snake Plant", 20 * 24 * time.Hour, models.StageNewlyPlanted, models.HealthFair,
			nil},
	}

	for _, entry := range entries {
		species, ok := catalog.Lookup(entry.species)
		if !ok {
			log.Printf("   ❌ Unknown species in seed data: %s", entry.species)
			continue
		}

		plant := models.TrackedPlant{
			ID:             uuid.New().String(),
			UserID:         user.ID,
			Name:           species.Name,
			ScientificName: species.ScientificName,
			Category:       catalog.CategoryFor(species.Name),
			PlantedDate:    now.Add(-entry.plantedAgo).Format(models.DateLayout),
			GrowthStage:    entry.stage,
			HealthStatus:   entry.health,
		}
		for _, ago := range entry.waterings {
			plant.WateringLog = append(plant.WateringLog, models.WateringEvent{
				ID:        uuid.New().String(),
				PlantID:   plant.ID,
				Timestamp: now.Add(-ago),
			})
		}

		if err := database.DB.Create(&plant).Error; err != nil {
			log.Printf("   ❌ Failed to create plant %s: %v", plant.Name, err)
		} else {
			log.Printf("   🌱 Plant Added: %s (%s)", plant.Name, plant.GrowthStage)
		}
	}
}
