package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/services"
)

// GetImpact recomputes the environmental impact snapshot for all tracked
// plants, with everyday equivalencies.
func GetImpact(c *gin.Context) {
	session := currentSession(c)
	if session == nil {
		return
	}
	session.Lock()
	defer session.Unlock()

	snapshot := services.CalculateImpact(session.Plants)

	response := gin.H{
		"impact":        snapshot,
		"equivalencies": services.Equivalencies(snapshot),
		"plantCount":    len(session.Plants),
	}
	if session.Stale {
		response["staleWarning"] = "Showing last known data; the durable store is currently unreachable."
	}
	c.JSON(http.StatusOK, response)
}

const maxProjectionYears = 50

// GetImpactProjection projects the current snapshot over future years with
// diminishing growth returns.
func GetImpactProjection(c *gin.Context) {
	session := currentSession(c)
	if session == nil {
		return
	}
	session.Lock()
	defer session.Unlock()

	years := 10
	if yearsStr := c.Query("years"); yearsStr != "" {
		parsed, err := strconv.Atoi(yearsStr)
		if err != nil || parsed < 1 || parsed > maxProjectionYears {
			c.JSON(http.StatusBadRequest, gin.H{"error": "years must be between 1 and 50"})
			return
		}
		years = parsed
	}

	snapshot := services.CalculateImpact(session.Plants)

	c.JSON(http.StatusOK, gin.H{
		"current":    snapshot,
		"projection": services.ProjectOverYears(snapshot, years),
		"years":      years,
	})
}
