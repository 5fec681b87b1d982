package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/database"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/models"
)

// GetActivityFeed lists the caller's recent lifecycle and gamification
// events, newest first. Empty when running without a database.
func GetActivityFeed(c *gin.Context) {
	userID := c.GetString("userId")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	limit := 20
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 || parsed > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
			return
		}
		limit = parsed
	}

	activities := []models.UserActivity{}
	if database.DB != nil {
		if err := database.DB.
			Where("actor_id = ?", userID).
			Order("created_at DESC").
			Limit(limit).
			Find(&activities).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load activity feed"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"activities": activities,
		"count":      len(activities),
	})
}
