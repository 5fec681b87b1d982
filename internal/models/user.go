package models

import (
	"time"
)

// DateLayout is the canonical day format for streak and planted-date
// bookkeeping. Streaks are day-granular, so dates are stored as plain
// YYYY-MM-DD strings rather than timestamps.
const DateLayout = "2006-01-02"

// UserProfile holds the gamification state for one identity. Level only
// increases, XP only increases outside an explicit reset, and badges once
// earned are never revoked. GreenScore is deliberately absent: it is
// recomputed from tracked plants on every read and never stored.
type UserProfile struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Username string `gorm:"uniqueIndex" json:"username"`
	Email    string `gorm:"uniqueIndex" json:"email"`
	Password string `json:"-"`

	Level            int    `gorm:"default:1" json:"level"`
	ExperiencePoints int    `gorm:"default:0" json:"experiencePoints"`
	StreakDays       int    `gorm:"default:0" json:"streakDays"`
	LastActiveDate   string `json:"lastActiveDate"` // YYYY-MM-DD

	TotalPlantsPlanted int     `gorm:"default:0" json:"totalPlantsPlanted"`
	TotalCO2Offset     float64 `gorm:"default:0" json:"totalCo2Offset"` // kg, cumulative
	JoinDate           string  `json:"joinDate"`
	ProfileComplete    bool    `gorm:"default:false" json:"profileComplete"`

	Badges []UserBadge `gorm:"foreignKey:UserID" json:"badges"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// SessionMode classifies a session by plant ownership. It is derived at
// every observation point and never stored, so it cannot desync.
type SessionMode string

const (
	ModeExplorer SessionMode = "Explorer"
	ModeGuardian SessionMode = "Guardian"
)

// DeriveMode returns Explorer for a session with zero tracked plants and
// Guardian otherwise.
func DeriveMode(plantCount int) SessionMode {
	if plantCount == 0 {
		return ModeExplorer
	}
	return ModeGuardian
}
