package services

import (
	"fmt"
	"time"

	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/catalog"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/models"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/pkg/errors"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/pkg/utils"
)

// XP grants for lifecycle actions.
const (
	xpWatering     = 10
	xpStatusUpdate = 20
)

// CreatePlant commits the user to a catalog species: a fresh tracked plant
// with a unique id, stage Newly Planted, health Good and an empty watering
// log. Side effect: increments the profile's TotalPlantsPlanted counter.
func (s *Session) CreatePlant(speciesName string, plantedDate time.Time) (*models.TrackedPlant, error) {
	species, ok := catalog.Lookup(speciesName)
	if !ok {
		return nil, errors.Validation("unknown species: " + speciesName)
	}

	if plantedDate.IsZero() {
		plantedDate = time.Now()
	}

	plant := models.TrackedPlant{
		ID:             utils.GenerateID(),
		UserID:         s.UserID,
		Name:           species.Name,
		ScientificName: species.ScientificName,
		Category:       species.Category,
		PlantedDate:    plantedDate.Format(models.DateLayout),
		GrowthStage:    models.StageNewlyPlanted,
		HealthStatus:   models.HealthGood,
		WateringLog:    []models.WateringEvent{},
		CreatedAt:      plantedDate,
	}

	s.Plants = append(s.Plants, plant)
	s.Profile.TotalPlantsPlanted++

	LogActivity(s.UserID, models.ActivityPlantCreated, plant.ID, "Started tracking "+species.Name)

	return &s.Plants[len(s.Plants)-1], nil
}

// LogWatering appends a watering event to the plant's log. The log is
// append-only and monotonically non-decreasing in time; prior entries are
// never removed or reordered.
func (s *Session) LogWatering(plantID string, timestamp time.Time) error {
	plant, err := s.FindPlant(plantID)
	if err != nil {
		return err
	}

	if timestamp.IsZero() {
		timestamp = time.Now()
	}
	if n := len(plant.WateringLog); n > 0 && timestamp.Before(plant.WateringLog[n-1].Timestamp) {
		return errors.Validation("watering timestamp precedes the latest log entry")
	}

	plant.WateringLog = append(plant.WateringLog, models.WateringEvent{
		ID:        utils.GenerateID(),
		PlantID:   plant.ID,
		Timestamp: timestamp,
	})

	s.AddXP(xpWatering, "Watered "+plant.Name)
	LogActivity(s.UserID, models.ActivityPlantWatered, plant.ID, "Watered "+plant.Name)

	return nil
}

// UpdateStatus overwrites growth stage and health atomically: both values
// are validated before either field is touched.
func (s *Session) UpdateStatus(plantID string, stage models.GrowthStage, health models.HealthStatus) error {
	if !models.ValidGrowthStage(stage) {
		return errors.Validation("unrecognized growth stage: " + string(stage))
	}
	if !models.ValidHealthStatus(health) {
		return errors.Validation("unrecognized health status: " + string(health))
	}

	plant, err := s.FindPlant(plantID)
	if err != nil {
		return err
	}

	plant.GrowthStage = stage
	plant.HealthStatus = health

	s.AddXP(xpStatusUpdate, "Updated "+plant.Name)
	LogActivity(s.UserID, models.ActivityStatusUpdated, plant.ID,
		fmt.Sprintf("%s is now %s (%s)", plant.Name, stage, health))

	return nil
}

// RemovePlant deletes the tracked plant and its entire watering log.
// Irreversible; removing an unknown id is a NotFound, never silent.
func (s *Session) RemovePlant(plantID string) error {
	for i := range s.Plants {
		if s.Plants[i].ID == plantID {
			name := s.Plants[i].Name
			s.Plants = append(s.Plants[:i], s.Plants[i+1:]...)
			LogActivity(s.UserID, models.ActivityPlantRemoved, plantID, "Removed "+name)
			return nil
		}
	}
	return errors.NotFound("plant not found: " + plantID)
}

// Watering advisory thresholds in days. Balcony plants want frequent
// watering; outdoor trees are on a sparser cycle.
const (
	frequentWaterDays      = 3
	frequentFertilizerDays = 14
	sparseWaterDays        = 7
	sparseFertilizerDays   = 21
)

// SuggestNextAction returns a read-only care advisory derived from the days
// since the last watering entry. It never mutates state.
func SuggestNextAction(plant *models.TrackedPlant, now time.Time) string {
	if len(plant.WateringLog) == 0 {
		return "💧 Water your plant for the first time!"
	}

	last := plant.WateringLog[len(plant.WateringLog)-1].Timestamp
	daysSince := int(now.Sub(last).Hours() / 24)

	waterDays, fertilizerDays := sparseWaterDays, sparseFertilizerDays
	if plant.Category == models.CategoryBalcony {
		waterDays, fertilizerDays = frequentWaterDays, frequentFertilizerDays
	}

	switch {
	case daysSince >= fertilizerDays:
		return "🌱 Time to add fertilizer"
	case daysSince >= waterDays:
		return fmt.Sprintf("💧 Water needed! Last watered %d days ago", daysSince)
	default:
		return "✅ All good! Check again tomorrow"
	}
}
