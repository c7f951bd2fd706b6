// ABOUTME: Tests for the stats aggregator.
// ABOUTME: Covers totals, streak windows, XP math, leveling, and unlocks.
package stats

import (
	"testing"
	"time"

	"github.com/harperreed/deskflow/internal/models"
)

var testCatalog = []models.Achievement{
	{ID: "first-step", Condition: models.ConditionSessions, Threshold: 1, XPReward: 100},
	{ID: "warming-up", Condition: models.ConditionSessions, Threshold: 5, XPReward: 250},
	{ID: "streak-3", Condition: models.ConditionStreak, Threshold: 3, XPReward: 500},
	{ID: "burner", Condition: models.ConditionCalories, Threshold: 50, XPReward: 200},
	{ID: "steady", Condition: models.ConditionConsistency, Threshold: 7, XPReward: 300},
}

func session(date time.Time, seconds, calories int) models.Session {
	return models.Session{
		Date:            date,
		DurationSeconds: seconds,
		CaloriesBurned:  calories,
	}
}

func TestComputeEmpty(t *testing.T) {
	got := Compute(nil, testCatalog, time.Now())

	if got.TotalSessions != 0 || got.TotalMinutes != 0 || got.TotalCalories != 0 {
		t.Errorf("totals = %d/%d/%d, want zeros", got.TotalSessions, got.TotalMinutes, got.TotalCalories)
	}
	if got.CurrentStreak != 0 {
		t.Errorf("CurrentStreak = %d, want 0", got.CurrentStreak)
	}
	if got.Level != 1 {
		t.Errorf("Level = %d, want 1", got.Level)
	}
	if got.CurrentXP != 0 || got.NextLevelXP != 500 {
		t.Errorf("XP = %d/%d, want 0/500", got.CurrentXP, got.NextLevelXP)
	}
	if len(got.UnlockedAchievements) != 0 {
		t.Errorf("UnlockedAchievements = %v, want none", got.UnlockedAchievements)
	}
}

func TestComputeSingleSession(t *testing.T) {
	now := time.Date(2026, 8, 28, 14, 0, 0, 0, time.Local)
	history := []models.Session{session(now.Add(-time.Hour), 180, 10)}

	got := Compute(history, testCatalog, now)

	if got.TotalSessions != 1 {
		t.Errorf("TotalSessions = %d, want 1", got.TotalSessions)
	}
	if got.TotalMinutes != 3 {
		t.Errorf("TotalMinutes = %d, want 3", got.TotalMinutes)
	}
	if got.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1", got.CurrentStreak)
	}
	if !got.Unlocked("first-step") {
		t.Error("first-step should unlock after one session")
	}

	// 100 session + 15 minute + 10 calorie + 100 achievement = 225.
	if got.CurrentXP != 225 {
		t.Errorf("CurrentXP = %d, want 225", got.CurrentXP)
	}
	if got.Level != 1 {
		t.Errorf("Level = %d, want 1", got.Level)
	}
}

func TestComputeLeveling(t *testing.T) {
	// 5 sessions today: 500 session XP + 25 minute XP + 100 + 250
	// achievement XP = 875. Level 1 costs 500, leaving 375 toward the
	// 1000 needed for level 3.
	now := time.Date(2026, 8, 28, 14, 0, 0, 0, time.Local)
	var history []models.Session
	for i := 0; i < 5; i++ {
		history = append(history, session(now.Add(-time.Duration(i)*time.Hour), 60, 0))
	}

	got := Compute(history, testCatalog, now)

	if got.Level != 2 {
		t.Errorf("Level = %d, want 2", got.Level)
	}
	if got.CurrentXP != 375 {
		t.Errorf("CurrentXP = %d, want 375", got.CurrentXP)
	}
	if got.NextLevelXP != 1000 {
		t.Errorf("NextLevelXP = %d, want 1000", got.NextLevelXP)
	}
}

func TestComputeCaloriesUnlock(t *testing.T) {
	now := time.Date(2026, 8, 28, 14, 0, 0, 0, time.Local)
	history := []models.Session{session(now, 60, 60)}

	got := Compute(history, testCatalog, now)

	if !got.Unlocked("burner") {
		t.Error("burner should unlock at 60 total calories")
	}
}

func TestConsistencyNeverUnlocks(t *testing.T) {
	now := time.Date(2026, 8, 28, 14, 0, 0, 0, time.Local)
	var history []models.Session
	for i := 0; i < 30; i++ {
		history = append(history, session(now.AddDate(0, 0, -i), 300, 20))
	}

	got := Compute(history, testCatalog, now)

	if got.Unlocked("steady") {
		t.Error("consistency achievements have no evaluation rule and must stay locked")
	}
}

func TestCurrentStreak(t *testing.T) {
	now := time.Date(2026, 8, 28, 14, 0, 0, 0, time.Local)
	day := func(offset int) time.Time { return now.AddDate(0, 0, offset) }

	tests := []struct {
		name    string
		history []models.Session
		want    int
	}{
		{
			name:    "today and yesterday",
			history: []models.Session{session(day(0), 60, 0), session(day(-1), 60, 0)},
			want:    2,
		},
		{
			name:    "anchored at yesterday",
			history: []models.Session{session(day(-1), 60, 0), session(day(-2), 60, 0)},
			want:    2,
		},
		{
			name:    "gap breaks the streak",
			history: []models.Session{session(day(0), 60, 0), session(day(-3), 60, 0)},
			want:    1,
		},
		{
			name:    "stale anchor is zero",
			history: []models.Session{session(day(-2), 60, 0), session(day(-3), 60, 0)},
			want:    0,
		},
		{
			name: "multiple sessions per day count once",
			history: []models.Session{
				session(day(0), 60, 0),
				session(day(0).Add(2*time.Hour), 60, 0),
				session(day(-1), 60, 0),
			},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := currentStreak(tt.history, now)
			if got != tt.want {
				t.Errorf("currentStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}
