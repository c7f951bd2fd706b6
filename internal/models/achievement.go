// ABOUTME: Achievement catalog model and derived user stats.
// ABOUTME: Condition kinds and icons are closed enumerations, not string lookups.
package models

// ConditionKind is the closed set of achievement unlock conditions.
type ConditionKind string

const (
	ConditionSessions ConditionKind = "sessions"
	ConditionStreak   ConditionKind = "streak"
	ConditionCalories ConditionKind = "calories"
	// ConditionConsistency is declared in the catalog schema but has no
	// evaluation rule; achievements of this kind stay locked.
	ConditionConsistency ConditionKind = "consistency"
)

// Icon identifies the glyph shown for an achievement.
type Icon string

const (
	IconFootprints Icon = "footprints"
	IconFlame      Icon = "flame"
	IconZap        Icon = "zap"
	IconGhost      Icon = "ghost"
	IconSword      Icon = "sword"
)

// Achievement is a static catalog entry. Unlock state is derived from
// raw session totals, never stored.
type Achievement struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Icon        Icon          `json:"icon"`
	Condition   ConditionKind `json:"condition"`
	Threshold   int           `json:"threshold"`
	XPReward    int           `json:"xp_reward"`
}

// Stats is fully derived from the session log on every read. No cached
// copy is authoritative.
type Stats struct {
	TotalSessions int `json:"total_sessions"`
	TotalMinutes  int `json:"total_minutes"`
	TotalCalories int `json:"total_calories"`
	CurrentStreak int `json:"current_streak"`
	Level         int `json:"level"`
	// CurrentXP is progress within the current level, after threshold
	// subtraction. NextLevelXP is the threshold still ahead.
	CurrentXP   int `json:"current_xp"`
	NextLevelXP int `json:"next_level_xp"`
	// UnlockedAchievements holds achievement ids in catalog order.
	UnlockedAchievements []string `json:"unlocked_achievements"`
}

// Unlocked reports whether the given achievement id is in the unlocked set.
func (s Stats) Unlocked(id string) bool {
	for _, got := range s.UnlockedAchievements {
		if got == id {
			return true
		}
	}
	return false
}
