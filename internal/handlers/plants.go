package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/models"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/services"
)

type CreatePlantInput struct {
	Species     string `json:"species" binding:"required"`
	PlantedDate string `json:"plantedDate"` // YYYY-MM-DD, defaults to today
}

func CreatePlant(c *gin.Context) {
	session := currentSession(c)
	if session == nil {
		return
	}
	session.Lock()
	defer session.Unlock()

	var input CreatePlantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plantedDate := time.Now()
	if input.PlantedDate != "" {
		parsed, err := time.Parse(models.DateLayout, input.PlantedDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "plantedDate must be YYYY-MM-DD"})
			return
		}
		plantedDate = parsed
	}

	plant, err := session.CreatePlant(input.Species, plantedDate)
	if err != nil {
		respondError(c, err)
		return
	}

	earned := session.CheckAndAwardBadges()

	c.JSON(http.StatusCreated, mutationExtras(session, gin.H{
		"plant":        plant,
		"badgesEarned": earned,
	}))
}

// plantView decorates a tracked plant with derived, never-stored fields.
type plantView struct {
	models.TrackedPlant
	DaysSincePlanted int    `json:"daysSincePlanted"`
	NextAction       string `json:"nextAction"`
}

func GetPlants(c *gin.Context) {
	session := currentSession(c)
	if session == nil {
		return
	}
	session.Lock()
	defer session.Unlock()

	now := time.Now()
	views := make([]plantView, 0, len(session.Plants))
	for i := range session.Plants {
		plant := session.Plants[i]
		views = append(views, plantView{
			TrackedPlant:     plant,
			DaysSincePlanted: plant.DaysSincePlanted(now),
			NextAction:       services.SuggestNextAction(&plant, now),
		})
	}

	response := gin.H{
		"plants": views,
		"count":  len(views),
		"mode":   session.Mode(),
	}
	if session.Stale {
		response["staleWarning"] = "Showing last known data; the durable store is currently unreachable."
	}
	c.JSON(http.StatusOK, response)
}

type WaterPlantInput struct {
	Timestamp string `json:"timestamp"` // RFC3339, defaults to now
}

func WaterPlant(c *gin.Context) {
	session := currentSession(c)
	if session == nil {
		return
	}
	session.Lock()
	defer session.Unlock()

	var input WaterPlantInput
	if err := c.ShouldBindJSON(&input); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var timestamp time.Time
	if input.Timestamp != "" {
		parsed, err := time.Parse(time.RFC3339, input.Timestamp)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "timestamp must be RFC3339"})
			return
		}
		timestamp = parsed
	}

	plantID := c.Param("id")
	if err := session.LogWatering(plantID, timestamp); err != nil {
		respondError(c, err)
		return
	}

	earned := session.CheckAndAwardBadges()

	plant, _ := session.FindPlant(plantID)
	c.JSON(http.StatusOK, mutationExtras(session, gin.H{
		"plant":        plant,
		"badgesEarned": earned,
	}))
}

type UpdateStatusInput struct {
	GrowthStage  string `json:"growthStage" binding:"required"`
	HealthStatus string `json:"healthStatus" binding:"required"`
}

func UpdatePlantStatus(c *gin.Context) {
	session := currentSession(c)
	if session == nil {
		return
	}
	session.Lock()
	defer session.Unlock()

	var input UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plantID := c.Param("id")
	err := session.UpdateStatus(plantID,
		models.GrowthStage(input.GrowthStage), models.HealthStatus(input.HealthStatus))
	if err != nil {
		respondError(c, err)
		return
	}

	earned := session.CheckAndAwardBadges()

	plant, _ := session.FindPlant(plantID)
	c.JSON(http.StatusOK, mutationExtras(session, gin.H{
		"plant":        plant,
		"badgesEarned": earned,
	}))
}

func DeletePlant(c *gin.Context) {
	session := currentSession(c)
	if session == nil {
		return
	}
	session.Lock()
	defer session.Unlock()

	if err := session.RemovePlant(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mutationExtras(session, gin.H{
		"message": "Plant removed",
	}))
}
