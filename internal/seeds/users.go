package seeds

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/database"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func GetOrCreateDemoUser() (models.UserProfile, error) {
	log.Println("👤 Checking Demo User...")

	username := "green_enthusiast"
	email := "demo@aircare.dev"

	var user models.UserProfile
	err := database.DB.Where("username = ?", username).First(&user).Error

	if err == nil {
		log.Printf("   ✅ Demo User found: %s", user.Username)
		return user, nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("GrowTrees2026!"), bcrypt.DefaultCost)

	user = models.UserProfile{
		ID:             uuid.New().String(),
		Username:       username,
		Email:          email,
		Password:       string(hash),
		Level:          1,
		JoinDate:       time.Now().Format(models.DateLayout),
		LastActiveDate: time.Now().Format(models.DateLayout),
		StreakDays:     1,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := database.DB.Create(&user).Error; err != nil {
		return models.UserProfile{}, err
	}

	log.Printf("   ✅ Demo User Created: %s", user.Username)
	return user, nil
}
