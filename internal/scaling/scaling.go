// ABOUTME: Exercise scaling engine producing per-exercise workout parameters.
// ABOUTME: Rules apply in fixed order; intensity compounds, later labels win.
package scaling

import (
	"math"

	"github.com/harperreed/deskflow/internal/models"
)

// Absolute safety floors. Scaling never goes below these.
const (
	MinReps        = 5
	MinDurationSec = 15
)

const (
	baseRestSec        = 30
	defaultDurationSec = 30
	heavyWeightKg      = 130.0
)

// Scale computes workout parameters for one exercise. baseDurationSec of
// zero means the exercise has no duration component; the returned
// DurationSec then carries the scaled rest-baseline default. Total over
// its input domain: degenerate inputs clamp to the safety floors.
func Scale(p models.Profile, baseReps, baseDurationSec int, contraindications []string) models.ScaledSettings {
	intensity := 1.0
	label := "Standard"
	advice := "Perform with good form."
	rest := baseRestSec

	// Global risk tier scaling.
	switch p.RiskProfile {
	case models.RiskGeriatric:
		intensity *= 0.5
		label = "Stability / Low Impact"
		advice = "Perform seated or with support. Prioritize balance."
		rest = 60
	case models.RiskModified:
		intensity *= 0.8
		label = "Injury Modified"
		advice = "Controlled range of motion. Stop if any pain."
		rest = 45
	}

	// Contraindication conflict: the movement is not substituted out, so
	// modify aggressively instead.
	if hasConflict(p.Injuries, contraindications) {
		intensity *= 0.5
		label = "Therapeutic"
		advice = "EXTREME CAUTION: Modified for injury. Reduce range of motion by 50%."
	}

	// Age safety net for profiles whose tier is stale or inconsistent.
	if p.Age >= 65 && p.RiskProfile != models.RiskGeriatric {
		intensity *= 0.5
		rest = 60
	}

	// Heavy users get supported variants and longer recovery.
	if p.WeightKg > heavyWeightKg {
		intensity *= 0.6
		label += " (Supported)"
		advice = "Use seated variants where possible. Stop if pain occurs."
		rest = 60
	}

	reps := int(math.Floor(float64(baseReps) * intensity))
	if reps < MinReps {
		reps = MinReps
	}

	duration := defaultDurationSec
	if baseDurationSec > 0 {
		duration = int(math.Floor(float64(baseDurationSec) * intensity))
		if duration < MinDurationSec {
			duration = MinDurationSec
		}
	}

	return models.ScaledSettings{
		Reps:               reps,
		DurationSec:        duration,
		RestSec:            rest,
		IntensityLabel:     label,
		ModificationAdvice: advice,
	}
}

// ScaleExercise scales a catalog entry for the given user.
func ScaleExercise(p models.Profile, ex models.Exercise) models.ScaledSettings {
	return Scale(p, ex.BaseReps, ex.BaseDurationSec, ex.Contraindications)
}

func hasConflict(injuries, contraindications []string) bool {
	for _, injury := range injuries {
		for _, banned := range contraindications {
			if injury == banned {
				return true
			}
		}
	}
	return false
}
