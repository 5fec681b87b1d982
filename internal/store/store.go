package store

import (
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/models"
)

// SessionRecord is the durable shape of one user's session: the profile
// record, the plant records, and (embedded in each plant) the watering log.
// The three groups are independently writable in the backends but are
// always read together so the session reconstructs consistently.
type SessionRecord struct {
	Profile models.UserProfile   `json:"profile"`
	Plants  []models.TrackedPlant `json:"plants"`
}

// SessionStore persists per-user session records. Two interchangeable
// backends exist: a gorm-backed relational store and a JSON file store.
// The backend is selected once at startup, not per call.
//
// Writes are last-writer-wins at the granularity of a full session record;
// no partial-field merge is performed.
type SessionStore interface {
	// Load returns the stored record for a user, or (nil, nil) when no
	// durable records exist yet.
	Load(userID string) (*SessionRecord, error)
	// Save overwrites the user's durable record wholesale.
	Save(userID string, record *SessionRecord) error
	// Delete removes every record for a user.
	Delete(userID string) error
}
