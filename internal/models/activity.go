package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityType string

const (
	ActivityPlantCreated    ActivityType = "PLANT_CREATED"
	ActivityPlantWatered    ActivityType = "PLANT_WATERED"
	ActivityStatusUpdated   ActivityType = "STATUS_UPDATED"
	ActivityPlantRemoved    ActivityType = "PLANT_REMOVED"
	ActivityBadgeEarned     ActivityType = "BADGE_EARNED"
	ActivityLevelUp         ActivityType = "LEVEL_UP"
	ActivityStreakMilestone ActivityType = "STREAK_MILESTONE"
)

// UserActivity is an append-only feed of lifecycle and gamification events.
type UserActivity struct {
	ID        string       `gorm:"primaryKey;type:text" json:"id"`
	Type      ActivityType `gorm:"type:text;not null" json:"type"`
	ActorID   string       `gorm:"index;not null" json:"actorId"`
	TargetID  string       `gorm:"index" json:"targetId"` // plant id, badge id, etc.
	Message   string       `json:"message"`
	CreatedAt time.Time    `json:"createdAt"`
}

func (UserActivity) TableName() string {
	return "user_activities"
}

func (ua *UserActivity) BeforeCreate(tx *gorm.DB) (err error) {
	if ua.ID == "" {
		ua.ID = uuid.New().String()
	}
	if ua.CreatedAt.IsZero() {
		ua.CreatedAt = time.Now()
	}
	return
}
