// ABOUTME: Static achievement catalog with typed unlock conditions.
// ABOUTME: Unlock state is derived from raw session totals at read time.
package catalog

import (
	"github.com/harperreed/deskflow/internal/models"
)

// Achievements is the built-in achievement catalog, in display order.
var Achievements = []models.Achievement{
	{
		ID:          "first-step",
		Title:       "First Step",
		Description: "Complete your first micro-workout.",
		Icon:        models.IconFootprints,
		Condition:   models.ConditionSessions,
		Threshold:   1,
		XPReward:    100,
	},
	{
		ID:          "warming-up",
		Title:       "Warming Up",
		Description: "Complete 5 total sessions.",
		Icon:        models.IconFlame,
		Condition:   models.ConditionSessions,
		Threshold:   5,
		XPReward:    250,
	},
	{
		ID:          "streak-3",
		Title:       "On Fire",
		Description: "Maintain a 3-day streak.",
		Icon:        models.IconZap,
		Condition:   models.ConditionStreak,
		Threshold:   3,
		XPReward:    500,
	},
	{
		ID:          "stealth-ninja",
		Title:       "Office Ninja",
		Description: "Complete 5 Stealth Mode sessions.",
		Icon:        models.IconGhost,
		Condition:   models.ConditionSessions,
		Threshold:   5,
		XPReward:    400,
	},
	{
		ID:          "desk-warrior",
		Title:       "Desk Warrior",
		Description: "Complete 20 sessions.",
		Icon:        models.IconSword,
		Condition:   models.ConditionSessions,
		Threshold:   20,
		XPReward:    1000,
	},
}

// FindAchievement looks up an achievement by id.
func FindAchievement(id string) (models.Achievement, bool) {
	for _, ach := range Achievements {
		if ach.ID == id {
			return ach, true
		}
	}
	return models.Achievement{}, false
}
