// ABOUTME: Stats aggregator deriving streak, XP, level, and achievements.
// ABOUTME: Fully recomputed from the session log on every call; never cached.
package stats

import (
	"sort"
	"time"

	"github.com/harperreed/deskflow/internal/models"
)

// XP weighting and leveling constants.
const (
	xpPerSession = 100
	xpPerMinute  = 5
	levelStepXP  = 500
)

// Compute derives user stats from the session history and achievement
// catalog. Pure and deterministic for a fixed now; now anchors the
// streak's today/yesterday window.
func Compute(history []models.Session, catalog []models.Achievement, now time.Time) models.Stats {
	totalSessions := len(history)
	totalSeconds := 0
	totalCalories := 0
	for _, s := range history {
		totalSeconds += s.DurationSeconds
		totalCalories += s.CaloriesBurned
	}
	totalMinutes := totalSeconds / 60

	streak := currentStreak(history, now)

	// Raw XP from totals, then achievement bonuses. Achievements unlock
	// against the raw totals, never against XP, so the ordering here is
	// not circular.
	xp := totalSessions*xpPerSession + totalMinutes*xpPerMinute + totalCalories

	var unlocked []string
	for _, ach := range catalog {
		if achieved(ach, totalSessions, totalCalories, streak) {
			unlocked = append(unlocked, ach.ID)
			xp += ach.XPReward
		}
	}

	// Level by successive threshold subtraction: level L costs L*500 XP.
	level := 1
	nextLevelXP := levelStepXP
	remaining := xp
	for remaining >= nextLevelXP {
		remaining -= nextLevelXP
		level++
		nextLevelXP = level * levelStepXP
	}

	return models.Stats{
		TotalSessions:        totalSessions,
		TotalMinutes:         totalMinutes,
		TotalCalories:        totalCalories,
		CurrentStreak:        streak,
		Level:                level,
		CurrentXP:            remaining,
		NextLevelXP:          nextLevelXP,
		UnlockedAchievements: unlocked,
	}
}

// achieved evaluates an unlock condition against raw totals. The
// consistency kind has no evaluation rule and never auto-unlocks.
func achieved(ach models.Achievement, sessions, calories, streak int) bool {
	switch ach.Condition {
	case models.ConditionSessions:
		return sessions >= ach.Threshold
	case models.ConditionCalories:
		return calories >= ach.Threshold
	case models.ConditionStreak:
		return streak >= ach.Threshold
	default:
		return false
	}
}

// currentStreak counts consecutive calendar days with at least one
// session, anchored at today or yesterday. Any older anchor means the
// streak is broken.
func currentStreak(history []models.Session, now time.Time) int {
	if len(history) == 0 {
		return 0
	}

	// Distinct local dates, sorted descending.
	seen := make(map[time.Time]bool, len(history))
	var dates []time.Time
	for _, s := range history {
		d := dateOf(s.Date)
		if !seen[d] {
			seen[d] = true
			dates = append(dates, d)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })

	today := dateOf(now)
	yesterday := today.AddDate(0, 0, -1)
	if !dates[0].Equal(today) && !dates[0].Equal(yesterday) {
		return 0
	}

	streak := 1
	for i := 0; i < len(dates)-1; i++ {
		if dates[i+1].Equal(dates[i].AddDate(0, 0, -1)) {
			streak++
		} else {
			break
		}
	}
	return streak
}

// dateOf truncates a timestamp to midnight local time.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
