package store

import (
	"errors"

	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore persists session records in a relational database through gorm.
// This is the production backend.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Load(userID string) (*SessionRecord, error) {
	var profile models.UserProfile
	err := s.db.Preload("Badges").Where("id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var plants []models.TrackedPlant
	if err := s.db.
		Preload("WateringLog", func(db *gorm.DB) *gorm.DB {
			return db.Order("watering_events.timestamp asc")
		}).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&plants).Error; err != nil {
		return nil, err
	}

	return &SessionRecord{Profile: profile, Plants: plants}, nil
}

func (s *GormStore) Save(userID string, record *SessionRecord) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		// Profile upsert. Badges are append-only: existing rows are never
		// deleted, conflicts (already-earned badges) are ignored.
		profile := record.Profile
		badges := profile.Badges
		profile.Badges = nil
		if err := tx.Save(&profile).Error; err != nil {
			return err
		}
		for i := range badges {
			badge := badges[i]
			badge.UserID = userID
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&badge).Error; err != nil {
				return err
			}
		}

		// Plants and watering logs are replaced wholesale: last writer wins
		// at full-session granularity, no field-level merge.
		var plantIDs []string
		if err := tx.Model(&models.TrackedPlant{}).
			Where("user_id = ?", userID).
			Pluck("id", &plantIDs).Error; err != nil {
			return err
		}
		if len(plantIDs) > 0 {
			if err := tx.Where("plant_id IN ?", plantIDs).Delete(&models.WateringEvent{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.TrackedPlant{}).Error; err != nil {
			return err
		}

		for i := range record.Plants {
			plant := record.Plants[i]
			plant.UserID = userID
			if err := tx.Create(&plant).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *GormStore) Delete(userID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var plantIDs []string
		if err := tx.Model(&models.TrackedPlant{}).
			Where("user_id = ?", userID).
			Pluck("id", &plantIDs).Error; err != nil {
			return err
		}
		if len(plantIDs) > 0 {
			if err := tx.Where("plant_id IN ?", plantIDs).Delete(&models.WateringEvent{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.TrackedPlant{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserBadge{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", userID).Delete(&models.UserProfile{}).Error
	})
}
