package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserBadge is a one-time, non-revocable achievement. The (UserID, Name)
// pair is unique so a badge can never be earned twice.
type UserBadge struct {
	ID          string    `gorm:"primaryKey;type:text" json:"id"`
	UserID      string    `gorm:"index;uniqueIndex:idx_user_badge;not null" json:"userId"`
	Name        string    `gorm:"uniqueIndex:idx_user_badge;not null" json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	EarnedAt    time.Time `json:"earnedAt"`
}

func (UserBadge) TableName() string {
	return "user_badges"
}

func (b *UserBadge) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	if b.EarnedAt.IsZero() {
		b.EarnedAt = time.Now()
	}
	return
}
