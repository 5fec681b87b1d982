package migrations

import (
	"gorm.io/gorm"
)

// Migration001AddPerformanceIndexes adds composite indexes for hot-path
// queries that AutoMigrate's single-column tags don't cover:
// 1. Watering history replay per plant, ordered by time
// 2. Activity feed per user, newest first
//
// All indexes are idempotent (IF NOT EXISTS) for safe re-runs.
func Migration001AddPerformanceIndexes() Migration {
	return Migration{
		ID:   "001_add_performance_indexes",
		Name: "Add performance indexes for hot-path queries",
		Up: func(db *gorm.DB) error {
			// Watering log replay: WHERE plant_id = ? ORDER BY timestamp
			idx1 := `
				CREATE INDEX IF NOT EXISTS idx_watering_events_plant_time
				ON watering_events (plant_id, timestamp)
			`
			if err := db.Exec(idx1).Error; err != nil {
				return err
			}

			// Activity feed: WHERE actor_id = ? ORDER BY created_at DESC
			idx2 := `
				CREATE INDEX IF NOT EXISTS idx_user_activities_actor_time
				ON user_activities (actor_id, created_at)
			`
			return db.Exec(idx2).Error
		},
		Down: func(db *gorm.DB) error {
			if err := db.Exec(`DROP INDEX IF EXISTS idx_watering_events_plant_time`).Error; err != nil {
				return err
			}
			return db.Exec(`DROP INDEX IF EXISTS idx_user_activities_actor_time`).Error
		},
	}
}
