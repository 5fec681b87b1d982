package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/models"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/pkg/errors"
)

func newTestSession() *Session {
	return &Session{
		UserID:  "user-1",
		Profile: &models.UserProfile{ID: "user-1", Username: "tester", Level: 1},
	}
}

func TestCreatePlant(t *testing.T) {
	s := newTestSession()
	planted := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	plant, err := s.CreatePlant("Neem", planted)
	require.NoError(t, err)

	assert.NotEmpty(t, plant.ID)
	assert.Equal(t, "Neem", plant.Name)
	assert.Equal(t, "Azadirachta indica", plant.ScientificName)
	assert.Equal(t, models.CategoryOutdoor, plant.Category)
	assert.Equal(t, "2026-03-15", plant.PlantedDate)
	assert.Equal(t, models.StageNewlyPlanted, plant.GrowthStage)
	assert.Equal(t, models.HealthGood, plant.HealthStatus)
	assert.Empty(t, plant.WateringLog)
	assert.Equal(t, 1, s.Profile.TotalPlantsPlanted)
}

func TestCreatePlant_DefaultsPlantedDateToToday(t *testing.T) {
	s := newTestSession()
	plant, err := s.CreatePlant("Aloe Vera", time.Time{})
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format(models.DateLayout), plant.PlantedDate)
	assert.Equal(t, models.CategoryBalcony, plant.Category)
}

func TestCreatePlant_ResolvesDisplayName(t *testing.T) {
	s := newTestSession()
	plant, err := s.CreatePlant("Tulsi", time.Time{})
	require.NoError(t, err)
	assert.Equal(t, "Tulsi (Holy Basil)", plant.Name)
}

func TestCreatePlant_UnknownSpecies(t *testing.T) {
	s := newTestSession()
	_, err := s.CreatePlant("Triffid", time.Time{})
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindValidation))
	assert.Empty(t, s.Plants)
	assert.Zero(t, s.Profile.TotalPlantsPlanted)
}

func TestLogWatering(t *testing.T) {
	s := newTestSession()
	plant, err := s.CreatePlant("Neem", time.Time{})
	require.NoError(t, err)

	first := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, s.LogWatering(plant.ID, first))
	require.NoError(t, s.LogWatering(plant.ID, first.Add(48*time.Hour)))

	require.Len(t, plant.WateringLog, 2)
	assert.Equal(t, plant.ID, plant.WateringLog[0].PlantID)
	assert.Equal(t, 20, s.Profile.ExperiencePoints)
}

func TestLogWatering_RejectsBackdatedEntry(t *testing.T) {
	s := newTestSession()
	plant, err := s.CreatePlant("Neem", time.Time{})
	require.NoError(t, err)

	now := time.Now()
	require.NoError(t, s.LogWatering(plant.ID, now))

	err = s.LogWatering(plant.ID, now.Add(-time.Hour))
	assert.True(t, errors.IsKind(err, errors.KindValidation))
	assert.Len(t, plant.WateringLog, 1)
}

func TestLogWatering_UnknownPlant(t *testing.T) {
	s := newTestSession()
	err := s.LogWatering("missing-id", time.Now())
	assert.True(t, errors.IsKind(err, errors.KindNotFound))
}

func TestUpdateStatus(t *testing.T) {
	s := newTestSession()
	plant, err := s.CreatePlant("Banyan", time.Time{})
	require.NoError(t, err)

	require.NoError(t, s.UpdateStatus(plant.ID, models.StageSapling, models.HealthExcellent))
	assert.Equal(t, models.StageSapling, plant.GrowthStage)
	assert.Equal(t, models.HealthExcellent, plant.HealthStatus)
	assert.Equal(t, 20, s.Profile.ExperiencePoints)
}

func TestUpdateStatus_ValidatesBeforeMutating(t *testing.T) {
	s := newTestSession()
	plant, err := s.CreatePlant("Banyan", time.Time{})
	require.NoError(t, err)

	err = s.UpdateStatus(plant.ID, models.StageSapling, models.HealthStatus("Glowing"))
	assert.True(t, errors.IsKind(err, errors.KindValidation))

	// Neither field moved even though the stage alone was valid.
	assert.Equal(t, models.StageNewlyPlanted, plant.GrowthStage)
	assert.Equal(t, models.HealthGood, plant.HealthStatus)

	err = s.UpdateStatus(plant.ID, models.GrowthStage("Ancient"), models.HealthGood)
	assert.True(t, errors.IsKind(err, errors.KindValidation))
}

func TestRemovePlant(t *testing.T) {
	s := newTestSession()
	first, err := s.CreatePlant("Neem", time.Time{})
	require.NoError(t, err)
	firstID := first.ID
	_, err = s.CreatePlant("Mango", time.Time{})
	require.NoError(t, err)

	require.NoError(t, s.RemovePlant(firstID))
	require.Len(t, s.Plants, 1)
	assert.Equal(t, "Mango", s.Plants[0].Name)

	// The planted counter is cumulative and survives removal.
	assert.Equal(t, 2, s.Profile.TotalPlantsPlanted)

	err = s.RemovePlant(firstID)
	assert.True(t, errors.IsKind(err, errors.KindNotFound))
}

func TestSuggestNextAction(t *testing.T) {
	now := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)
	watered := func(daysAgo int) []models.WateringEvent {
		return []models.WateringEvent{{Timestamp: now.AddDate(0, 0, -daysAgo)}}
	}

	unwatered := &models.TrackedPlant{Category: models.CategoryOutdoor}
	assert.Contains(t, SuggestNextAction(unwatered, now), "first time")

	outdoor := &models.TrackedPlant{Category: models.CategoryOutdoor, WateringLog: watered(2)}
	assert.Contains(t, SuggestNextAction(outdoor, now), "All good")

	outdoor.WateringLog = watered(8)
	assert.Contains(t, SuggestNextAction(outdoor, now), "Water needed")

	outdoor.WateringLog = watered(22)
	assert.Contains(t, SuggestNextAction(outdoor, now), "fertilizer")

	// Balcony plants run on the frequent cycle.
	balcony := &models.TrackedPlant{Category: models.CategoryBalcony, WateringLog: watered(3)}
	assert.Contains(t, SuggestNextAction(balcony, now), "Water needed")

	balcony.WateringLog = watered(14)
	assert.Contains(t, SuggestNextAction(balcony, now), "fertilizer")
}
