package services

import (
	"fmt"
	"time"

	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/models"
)

// xpPerLevel: a level requires level × 500 XP to advance.
const xpPerLevel = 500

// badgeBonusXP is granted once per newly earned badge.
const badgeBonusXP = 50

// AddXP increments experience points and applies level-ups. A single grant
// that crosses multiple thresholds raises the level once per threshold,
// checked iteratively. XP and level never decrease through this path.
func (s *Session) AddXP(amount int, reason string) {
	if amount <= 0 {
		return
	}
	s.Profile.ExperiencePoints += amount
	if reason != "" {
		s.Notify(fmt.Sprintf("+%d XP: %s", amount, reason))
	}

	for s.Profile.ExperiencePoints >= s.Profile.Level*xpPerLevel {
		s.Profile.Level++
		s.Notify(fmt.Sprintf("🎉 Level Up! You're now Level %d", s.Profile.Level))
		LogActivity(s.UserID, models.ActivityLevelUp, "",
			fmt.Sprintf("Reached level %d", s.Profile.Level))
	}
}

// AwardBadge grants a badge once. Awarding an already-owned badge is a
// no-op; a new badge carries a fixed XP bonus that may itself level up.
// Returns true when the badge was newly earned.
func (s *Session) AwardBadge(name, icon, description string) bool {
	for _, badge := range s.Profile.Badges {
		if badge.Name == name {
			return false
		}
	}

	s.Profile.Badges = append(s.Profile.Badges, models.UserBadge{
		UserID:      s.UserID,
		Name:        name,
		Icon:        icon,
		Description: description,
		EarnedAt:    time.Now(),
	})

	s.Notify(fmt.Sprintf("🏆 New Badge Earned: %s %s", icon, name))
	LogActivity(s.UserID, models.ActivityBadgeEarned, "", "Earned badge: "+name)
	s.AddXP(badgeBonusXP, fmt.Sprintf("Earned %s badge!", name))
	return true
}

// xpProfileComplete is the one-time bonus for filling out the profile.
const xpProfileComplete = 25

// CompleteProfile marks the profile complete and grants the one-time XP
// bonus. Repeat calls are no-ops. Returns true on the first completion.
func (s *Session) CompleteProfile() bool {
	if s.Profile.ProfileComplete {
		return false
	}
	s.Profile.ProfileComplete = true
	s.AddXP(xpProfileComplete, "Completed profile!")
	return true
}

// badgeRule is one row of the fixed badge rule table.
type badgeRule struct {
	name        string
	icon        string
	description string
	satisfied   func(s *Session) bool
}

// carbonHeroThreshold is the cumulative CO₂ offset (kg) for Carbon Hero.
const carbonHeroThreshold = 100.0

// badgeRules is evaluated in order by CheckAndAwardBadges. The table is
// fixed; conditions read only derived counts and recomputed scores.
var badgeRules = []badgeRule{
	{"First Sprout", "🌱", "Planted your first tree!", func(s *Session) bool {
		return len(s.Plants) >= 1
	}},
	{"Tree Hugger", "🌳", "Tracked 10 trees!", func(s *Session) bool {
		return len(s.Plants) >= 10
	}},
	{"Green Thumb", "💚", "5 plants in excellent health!", func(s *Session) bool {
		return s.countByHealth(models.HealthExcellent) >= 5
	}},
	{"Balcony Boss", "🏙️", "Created a balcony garden!", func(s *Session) bool {
		return s.countByCategory(models.CategoryBalcony) >= 5
	}},
	{"Carbon Hero", "🌍", "Offset 100 kg of CO₂!", func(s *Session) bool {
		return s.Profile.TotalCO2Offset >= carbonHeroThreshold
	}},
	{"Rising Star", "⭐", "Reached Level 3!", func(s *Session) bool {
		return s.Profile.Level >= 3
	}},
	{"Week Warrior", "🔥", "Logged in for 7 consecutive days", func(s *Session) bool {
		return s.Profile.StreakDays >= 7
	}},
}

func (s *Session) countByHealth(health models.HealthStatus) int {
	count := 0
	for _, plant := range s.Plants {
		if plant.HealthStatus == health {
			count++
		}
	}
	return count
}

func (s *Session) countByCategory(category models.PlantCategory) int {
	count := 0
	for _, plant := range s.Plants {
		if plant.Category == category {
			count++
		}
	}
	return count
}

// CheckAndAwardBadges evaluates the rule table against current session
// state and awards any newly satisfied badge. Calls are repeatable: effects
// are idempotent because AwardBadge itself is. Returns newly earned names.
func (s *Session) CheckAndAwardBadges() []string {
	// The cumulative CO₂ counter only moves forward; a shrinking plant set
	// never takes an earned offset away.
	if carbon := CalculateImpact(s.Plants).CarbonSequesteredKg; carbon > s.Profile.TotalCO2Offset {
		s.Profile.TotalCO2Offset = carbon
	}

	var earned []string
	for _, rule := range badgeRules {
		if rule.satisfied(s) && s.AwardBadge(rule.name, rule.icon, rule.description) {
			earned = append(earned, rule.name)
		}
	}
	return earned
}

// streakMilestones grant a bonus of streakDays × 10 XP when reached.
var streakMilestones = map[int]bool{7: true, 30: true, 100: true}

// UpdateStreak advances the daily activity streak: consecutive-day logins
// increment it, a same-day call is a no-op, and any gap longer than one day
// resets it to 1. Always finishes by stamping lastActiveDate with today.
func (s *Session) UpdateStreak(today time.Time) {
	todayStr := today.Format(models.DateLayout)

	// Day arithmetic runs on the stored calendar dates, not on instants.
	// Both sides round-trip through DateLayout so the caller's zone cannot
	// shift the day boundary.
	todayDate, _ := time.Parse(models.DateLayout, todayStr)

	lastActive, err := time.Parse(models.DateLayout, s.Profile.LastActiveDate)
	switch {
	case s.Profile.LastActiveDate == "" || err != nil:
		s.Profile.StreakDays = 1
	default:
		daysDiff := int(todayDate.Sub(lastActive).Hours() / 24)
		switch {
		case daysDiff == 0:
			// Same day, nothing to do.
		case daysDiff == 1:
			s.Profile.StreakDays++
			if streakMilestones[s.Profile.StreakDays] {
				bonus := s.Profile.StreakDays * 10
				s.AddXP(bonus, fmt.Sprintf("%d-day streak!", s.Profile.StreakDays))
				LogActivity(s.UserID, models.ActivityStreakMilestone, "",
					fmt.Sprintf("%d-day streak milestone", s.Profile.StreakDays))
				if s.Profile.StreakDays == 7 {
					s.AwardBadge("Week Warrior", "🔥", "Logged in for 7 consecutive days")
				}
			}
		default:
			s.Profile.StreakDays = 1
		}
	}

	s.Profile.LastActiveDate = todayStr
}

// Green score bonuses per plant. The score is a derived composite,
// recomputed from tracked-plant attributes on demand and never stored.
var (
	healthBonus = map[models.HealthStatus]int{
		models.HealthExcellent:      5,
		models.HealthGood:           3,
		models.HealthFair:           1,
		models.HealthNeedsAttention: 0,
		models.HealthPoor:           -2,
	}
	maturityBonus = map[models.GrowthStage]int{
		models.StageNewlyPlanted: 0,
		models.StageSeedling:     2,
		models.StageSapling:      5,
		models.StageYoungTree:    10,
		models.StageMatureTree:   20,
	}
)

const greenScoreBase = 10

// CalculateGreenScore sums per-plant scores: a base value plus health,
// maturity and longevity bonuses (+10 past 30 days, a further +20 past 90).
func (s *Session) CalculateGreenScore(now time.Time) int {
	total := 0
	for _, plant := range s.Plants {
		score := greenScoreBase
		score += healthBonus[plant.HealthStatus]
		score += maturityBonus[plant.GrowthStage]

		days := plant.DaysSincePlanted(now)
		if days > 30 {
			score += 10
		}
		if days > 90 {
			score += 20
		}
		total += score
	}
	return total
}

// XPToNextLevel reports the XP still needed to reach the next level.
func XPToNextLevel(level, xp int) int {
	remaining := level*xpPerLevel - xp
	if remaining < 0 {
		return 0
	}
	return remaining
}

// rankTitles maps minimum levels to display titles.
var rankTitles = []struct {
	minLevel int
	title    string
}{
	{15, "🌍 Planet Protector"},
	{10, "🏞️ Eco Warrior"},
	{7, "🌲 Forest Keeper"},
	{5, "🌳 Tree Guardian"},
	{3, "🪴 Gardener"},
	{2, "🌿 Sprout"},
	{1, "🌱 Seedling"},
}

// RankTitle returns the display title for a level.
func RankTitle(level int) string {
	for _, rank := range rankTitles {
		if level >= rank.minLevel {
			return rank.title
		}
	}
	return "🌱 Seedling"
}
