// ABOUTME: Medical risk classifier mapping a profile to a risk tier.
// ABOUTME: Ordered decision list; first match wins, tiers never combine.
package risk

import (
	"github.com/harperreed/deskflow/internal/models"
)

// Thresholds for the geriatric/frailty pathway.
const (
	GeriatricAge = 65
	BMICutoff    = 35.0
)

// Classify maps a profile to its risk tier. Pure; callers must re-invoke
// it whenever age, weight, height, injuries, or red flags change and
// persist the result back into the profile.
func Classify(p models.Profile) models.RiskProfile {
	// Red flags are an absolute override regardless of all other fields.
	if len(p.RedFlags) > 0 {
		return models.RiskRedFlag
	}

	// Geriatric / frailty pathway. Missing biometrics default to a
	// non-triggering BMI inside p.BMI().
	if p.Age >= GeriatricAge || p.BMI() > BMICutoff {
		return models.RiskGeriatric
	}

	if len(p.Injuries) > 0 {
		return models.RiskModified
	}

	return models.RiskUnrestricted
}

// Reclassify returns a copy of the profile with RiskProfile recomputed.
func Reclassify(p models.Profile) models.Profile {
	p.RiskProfile = Classify(p)
	return p
}
