package utils

import "github.com/google/uuid"

// GenerateID returns a fresh globally unique identifier. Tracked plants,
// badges and activities all use these; an id is assigned once and never reused.
func GenerateID() string {
	return uuid.New().String()
}

// IsUUID checks if the string is a valid UUID
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
