package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/services"
)

// GetProfile returns the profile with its derived fields: green score,
// rank title, XP needed for the next level, and the session mode.
func GetProfile(c *gin.Context) {
	session := currentSession(c)
	if session == nil {
		return
	}
	session.Lock()
	defer session.Unlock()

	profile := session.Profile

	response := gin.H{
		"profile":    profile,
		"greenScore": session.CalculateGreenScore(time.Now()),
		"rank":       services.RankTitle(profile.Level),
		"xpForNext":  services.XPToNextLevel(profile.Level, profile.ExperiencePoints),
		"mode":       session.Mode(),
		"plantCount": len(session.Plants),
		"badges":     profile.Badges,
	}
	if session.Stale {
		response["staleWarning"] = "Showing last known data; the durable store is currently unreachable."
	}
	c.JSON(http.StatusOK, response)
}

type UpdateProfileInput struct {
	Username string `json:"username" binding:"required"`
}

// UpdateProfile renames the profile and marks it complete, which grants a
// one-time XP bonus.
func UpdateProfile(c *gin.Context) {
	session := currentSession(c)
	if session == nil {
		return
	}
	session.Lock()
	defer session.Unlock()

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username is required"})
		return
	}
	if !validateUsername(input.Username) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username must be 3-30 characters (letters, numbers, _ or -)"})
		return
	}

	session.Profile.Username = input.Username
	firstCompletion := session.CompleteProfile()

	c.JSON(http.StatusOK, mutationExtras(session, gin.H{
		"profile":          session.Profile,
		"profileCompleted": firstCompletion,
	}))
}

// RecordStreak advances the daily activity streak and re-runs badge
// checks for any milestone crossed.
func RecordStreak(c *gin.Context) {
	session := currentSession(c)
	if session == nil {
		return
	}
	session.Lock()
	defer session.Unlock()

	session.UpdateStreak(time.Now())
	earned := session.CheckAndAwardBadges()

	c.JSON(http.StatusOK, mutationExtras(session, gin.H{
		"streakDays":   session.Profile.StreakDays,
		"badgesEarned": earned,
	}))
}

// ResetProfile wipes the durable records and in-memory session for the
// caller. Intended for demo and test environments.
func ResetProfile(c *gin.Context) {
	userID := c.GetString("userId")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := Sessions.Reset(userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile reset"})
}
