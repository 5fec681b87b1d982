package services

import (
	"time"

	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/database"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/models"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/pkg/logger"
)

// LogActivity appends an event to the user activity feed. Recording is
// best effort; a write failure is logged and never propagated to the
// caller. Safe to call when no database is connected (file-store mode).
func LogActivity(actorID string, activityType models.ActivityType, targetID string, message string) {
	if database.DB == nil {
		return
	}

	activity := models.UserActivity{
		Type:      activityType,
		ActorID:   actorID,
		TargetID:  targetID,
		Message:   message,
		CreatedAt: time.Now(),
	}

	if err := database.DB.Create(&activity).Error; err != nil {
		logger.Warn().Err(err).Str("actor_id", actorID).Str("type", string(activityType)).
			Msg("Failed to log activity")
	}
}
