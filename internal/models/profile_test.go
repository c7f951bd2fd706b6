// ABOUTME: Tests for the Profile model.
// ABOUTME: Validates BMI computation, defaults, and the lockout predicate.
package models

import (
	"math"
	"testing"
)

func TestBMI(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		want    float64
	}{
		{"normal", Profile{WeightKg: 80, HeightCm: 180}, 24.69},
		{"heavy", Profile{WeightKg: 120, HeightCm: 170}, 41.52},
		{"missing weight", Profile{HeightCm: 180}, BMIDefault},
		{"missing height", Profile{WeightKg: 80}, BMIDefault},
		{"empty", Profile{}, BMIDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.profile.BMI()
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("BMI() = %.2f, want %.2f", got, tt.want)
			}
		})
	}
}

func TestLocked(t *testing.T) {
	if (Profile{RiskProfile: RiskGeriatric}).Locked() {
		t.Error("geriatric profile should not be locked")
	}
	if !(Profile{RiskProfile: RiskRedFlag}).Locked() {
		t.Error("red-flag profile should be locked")
	}
}
