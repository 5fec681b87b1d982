package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/models"
)

// FileStore persists session records as per-user JSON files, one file per
// record group: <userID>_profile.json, <userID>_plants.json and
// <userID>_watering.json. It serves as the local fallback backend when no
// database is available.
type FileStore struct {
	dataDir string
}

func NewFileStore(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dataDir: dataDir}, nil
}

func (s *FileStore) path(userID, recordType string) string {
	return filepath.Join(s.dataDir, fmt.Sprintf("%s_%s.json", userID, recordType))
}

type wateringFile map[string][]time.Time

func (s *FileStore) Load(userID string) (*SessionRecord, error) {
	profilePath := s.path(userID, "profile")
	if _, err := os.Stat(profilePath); os.IsNotExist(err) {
		return nil, nil
	}

	var profile models.UserProfile
	if err := readJSON(profilePath, &profile); err != nil {
		return nil, err
	}

	var plants []models.TrackedPlant
	if err := readJSON(s.path(userID, "plants"), &plants); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	var watering wateringFile
	if err := readJSON(s.path(userID, "watering"), &watering); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	// The watering record is stored separately; rejoin it per plant here so
	// the three record groups reconstruct one consistent session.
	for i := range plants {
		timestamps := watering[plants[i].ID]
		log := make([]models.WateringEvent, 0, len(timestamps))
		for _, ts := range timestamps {
			log = append(log, models.WateringEvent{PlantID: plants[i].ID, Timestamp: ts})
		}
		plants[i].WateringLog = log
	}

	return &SessionRecord{Profile: profile, Plants: plants}, nil
}

func (s *FileStore) Save(userID string, record *SessionRecord) error {
	if err := writeJSON(s.path(userID, "profile"), record.Profile); err != nil {
		return err
	}

	watering := make(wateringFile, len(record.Plants))
	plants := make([]models.TrackedPlant, len(record.Plants))
	for i, plant := range record.Plants {
		timestamps := make([]time.Time, 0, len(plant.WateringLog))
		for _, event := range plant.WateringLog {
			timestamps = append(timestamps, event.Timestamp)
		}
		watering[plant.ID] = timestamps
		plant.WateringLog = nil
		plants[i] = plant
	}

	if err := writeJSON(s.path(userID, "plants"), plants); err != nil {
		return err
	}
	return writeJSON(s.path(userID, "watering"), watering)
}

func (s *FileStore) Delete(userID string) error {
	for _, recordType := range []string{"profile", "plants", "watering"} {
		if err := os.Remove(s.path(userID, recordType)); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

func readJSON(path string, dest interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

func writeJSON(path string, value interface{}) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
