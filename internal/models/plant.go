package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GrowthStage string

const (
	StageNewlyPlanted GrowthStage = "Newly Planted"
	StageSeedling     GrowthStage = "Seedling"
	StageSapling      GrowthStage = "Sapling"
	StageYoungTree    GrowthStage = "Young Tree"
	StageMatureTree   GrowthStage = "Mature Tree"
)

// GrowthStages lists every stage in lifecycle order. Transitions are
// user-driven and unrestricted so that mis-entered data can be corrected.
var GrowthStages = []GrowthStage{
	StageNewlyPlanted,
	StageSeedling,
	StageSapling,
	StageYoungTree,
	StageMatureTree,
}

func ValidGrowthStage(s GrowthStage) bool {
	for _, stage := range GrowthStages {
		if s == stage {
			return true
		}
	}
	return false
}

type HealthStatus string

const (
	HealthExcellent      HealthStatus = "Excellent"
	HealthGood           HealthStatus = "Good"
	HealthFair           HealthStatus = "Fair"
	HealthNeedsAttention HealthStatus = "Needs Attention"
	HealthPoor           HealthStatus = "Poor"
)

var HealthStatuses = []HealthStatus{
	HealthExcellent,
	HealthGood,
	HealthFair,
	HealthNeedsAttention,
	HealthPoor,
}

func ValidHealthStatus(h HealthStatus) bool {
	for _, status := range HealthStatuses {
		if h == status {
			return true
		}
	}
	return false
}

// PlantCategory separates outdoor trees from balcony plants. Resolved once
// from the catalog when the plant is created, not re-derived at read sites.
type PlantCategory string

const (
	CategoryOutdoor PlantCategory = "OUTDOOR"
	CategoryBalcony PlantCategory = "BALCONY"
)

// TrackedPlant is one plant a user has committed to caring for. The species
// is a weak reference into the catalog by name; the catalog entry is shared,
// read-only and never owned by the plant.
type TrackedPlant struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	UserID string `gorm:"index;not null" json:"userId"`

	Name           string        `gorm:"not null" json:"name"` // catalog species key
	ScientificName string        `json:"scientificName"`
	Category       PlantCategory `gorm:"type:text;default:'OUTDOOR'" json:"category"`

	PlantedDate  string       `json:"plantedDate"` // YYYY-MM-DD
	GrowthStage  GrowthStage  `gorm:"type:text;not null" json:"growthStage"`
	HealthStatus HealthStatus `gorm:"type:text;not null" json:"healthStatus"`

	WateringLog []WateringEvent `gorm:"foreignKey:PlantID;constraint:OnDelete:CASCADE" json:"wateringLog"`
}

func (TrackedPlant) TableName() string {
	return "tracked_plants"
}

func (p *TrackedPlant) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

// DaysSincePlanted returns whole days elapsed since the planted date,
// or 0 when the date cannot be parsed.
func (p *TrackedPlant) DaysSincePlanted(now time.Time) int {
	planted, err := time.Parse(DateLayout, p.PlantedDate)
	if err != nil {
		return 0
	}
	days := int(now.Sub(planted).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// WateringEvent is a single watering log entry. Entries are append-only and
// ordered by timestamp; the log is never truncated except by plant removal.
type WateringEvent struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	PlantID   string    `gorm:"index;not null" json:"plantId"`
	Timestamp time.Time `gorm:"not null" json:"timestamp"`
}

func (WateringEvent) TableName() string {
	return "watering_events"
}

func (w *WateringEvent) BeforeCreate(tx *gorm.DB) (err error) {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	if w.Timestamp.IsZero() {
		w.Timestamp = time.Now()
	}
	return
}
