// ABOUTME: User profile model with biometrics, clinical data, and work hours.
// ABOUTME: The risk profile field is always derived, never set independently.
package models

import (
	"time"
)

// Gender represents the user's self-reported gender.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// FitnessLevel represents baseline activity level captured at onboarding.
type FitnessLevel string

const (
	FitnessSedentary     FitnessLevel = "Sedentary"
	FitnessLightlyActive FitnessLevel = "Lightly Active"
	FitnessActive        FitnessLevel = "Active"
)

// RiskProfile is one of four mutually exclusive risk tiers gating
// exercise intensity and feature access.
type RiskProfile string

const (
	// RiskUnrestricted applies when no clinical flags are present.
	RiskUnrestricted RiskProfile = "Unrestricted"
	// RiskModified applies when specific injuries require scaled movements.
	RiskModified RiskProfile = "Modified"
	// RiskGeriatric routes users to the low-impact/seated pathway.
	RiskGeriatric RiskProfile = "Geriatric"
	// RiskRedFlag is a medical lockout. Workouts are blocked until the
	// red-flag symptoms are cleared from the profile.
	RiskRedFlag RiskProfile = "RedFlag"
)

// Profile holds everything known about the user. Persisted as a single
// keyed record by the storage layer.
type Profile struct {
	Name     string  `json:"name"`
	Age      int     `json:"age"`
	WeightKg float64 `json:"weight_kg"`
	HeightCm float64 `json:"height_cm"`
	Gender   Gender  `json:"gender"`

	FitnessLevel FitnessLevel `json:"fitness_level"`

	// Clinical data. Free-text tags, e.g. "Hypertension", "Knees", "Chest Pain".
	MedicalConditions []string `json:"medical_conditions"`
	Injuries          []string `json:"injuries"`
	RedFlags          []string `json:"red_flags"`

	// RiskProfile is a pure function of (age, weight, height, injuries,
	// red flags). Recomputed on every profile change before persisting.
	RiskProfile RiskProfile `json:"risk_profile"`

	// Work hours as local time-of-day in "HH:MM" form.
	WorkStartTime string `json:"work_start_time"`
	WorkEndTime   string `json:"work_end_time"`

	HasAgreedToDisclaimer bool       `json:"has_agreed_to_disclaimer"`
	WaiverSignedAt        *time.Time `json:"waiver_signed_at,omitempty"`
	OnboardingCompleted   bool       `json:"onboarding_completed"`

	// Account fields. Sync is not implemented; these ride along for
	// forward compatibility with the export format.
	Email         string `json:"email,omitempty"`
	Authenticated bool   `json:"authenticated,omitempty"`
}

// BMIDefault is assumed when height or weight is missing. It sits below
// every risk threshold, so missing biometrics never trigger a tier.
const BMIDefault = 25.0

// BMI returns weight_kg / (height_m)^2, or BMIDefault when either input
// is missing.
func (p Profile) BMI() float64 {
	if p.WeightKg <= 0 || p.HeightCm <= 0 {
		return BMIDefault
	}
	heightM := p.HeightCm / 100
	return p.WeightKg / (heightM * heightM)
}

// Locked reports whether the profile is under medical lockout.
func (p Profile) Locked() bool {
	return p.RiskProfile == RiskRedFlag
}
