// ABOUTME: Workout session log record and calorie estimation.
// ABOUTME: Sessions are append-only; only a full history reset removes them.
package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// SessionMode records whether a session ran openly or in stealth mode.
type SessionMode string

const (
	ModeActive  SessionMode = "Active"
	ModeStealth SessionMode = "Stealth"
)

// Session is an immutable workout log record. Created at session
// completion and never mutated afterwards.
type Session struct {
	ID                 uuid.UUID   `json:"id"`
	Date               time.Time   `json:"date"`
	DurationSeconds    int         `json:"duration_seconds"`
	ExercisesCompleted int         `json:"exercises_completed"`
	CaloriesBurned     int         `json:"calories_burned"`
	Mode               SessionMode `json:"mode"`
}

// NewSession creates a session record with a generated UUID, stamped now.
func NewSession(durationSeconds, exercisesCompleted, caloriesBurned int, mode SessionMode) *Session {
	return &Session{
		ID:                 uuid.New(),
		Date:               time.Now(),
		DurationSeconds:    durationSeconds,
		ExercisesCompleted: exercisesCompleted,
		CaloriesBurned:     caloriesBurned,
		Mode:               mode,
	}
}

// WithDate sets a custom session timestamp.
func (s *Session) WithDate(t time.Time) *Session {
	s.Date = t
	return s
}

// workoutMETs is the metabolic equivalent used for calisthenics at
// moderate effort.
const workoutMETs = 3.8

// EstimateCalories returns the kcal estimate for a session of the given
// length performed by a user of the given weight.
func EstimateCalories(weightKg float64, durationSeconds int) int {
	hours := float64(durationSeconds) / 3600
	return int(math.Round(workoutMETs * weightKg * hours))
}
