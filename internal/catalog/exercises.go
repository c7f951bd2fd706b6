// ABOUTME: Static desk exercise catalog supplied to the core engine.
// ABOUTME: Twelve movements across strength, cardio, mobility, and posture.
package catalog

import (
	"github.com/harperreed/deskflow/internal/models"
)

// Exercises is the built-in catalog. Read-only; the engine only ever
// receives copies of these entries.
var Exercises = []models.Exercise{
	// Strength
	{
		ID:           "chair-squats",
		Name:         "Chair Squats",
		Category:     models.CategoryStrength,
		MuscleGroups: []string{"Quadriceps", "Glutes", "Hamstrings"},
		Description:  "The #1 antidote to sitting. Reverses hip tightness instantly.",
		Instructions: []string{
			"Stand feet hip-width apart.",
			"Push hips back, lower slowly (3 seconds).",
			"Lightly tap the chair seat with your glutes.",
			"Explode back up through your heels (1 second).",
		},
		CommonMistakes:    "Knees collapsing inward; dropping too fast.",
		Contraindications: []string{"Knees", "Recent Surgery"},
		Kind:              models.KindReps,
		BaseReps:          15,
		Tempo:             "3s Down, 1s Up",
		IntensityCue:      "Drive through heels!",
	},
	{
		ID:           "desk-pushups",
		Name:         "Incline Desk Push-ups",
		Category:     models.CategoryStrength,
		MuscleGroups: []string{"Chest", "Triceps", "Core"},
		Description:  "Upper body power without touching the floor.",
		Instructions: []string{
			"Hands on desk edge, wider than shoulders.",
			"Step back into a plank position.",
			"Lower chest to desk edge (2 seconds).",
			"Push back to start (1 second).",
		},
		CommonMistakes:    "Sagging hips; shrugging shoulders.",
		Contraindications: []string{"Wrists", "Shoulders"},
		Kind:              models.KindReps,
		BaseReps:          12,
		Tempo:             "2s Down, 1s Up",
		IntensityCue:      "Core tight like a plank!",
	},
	{
		ID:           "tricep-dips-seated",
		Name:         "Chair Dips",
		Category:     models.CategoryStrength,
		MuscleGroups: []string{"Triceps", "Shoulders"},
		Description:  "Isolate the back of your arms using your chair.",
		Instructions: []string{
			"Sit on edge of chair, hands gripping the front edge.",
			"Scoop hips forward off the chair.",
			"Bend elbows to lower hips toward floor.",
			"Press back up until arms are straight.",
		},
		CommonMistakes:    "Shrugging shoulders; flaring elbows out.",
		Contraindications: []string{"Shoulders", "Wrists"},
		Kind:              models.KindReps,
		BaseReps:          10,
		Tempo:             "2s Down, 1s Up",
		IntensityCue:      "Squeeze triceps at top!",
	},

	// Cardio (vigorous intermittent lifestyle activity)
	{
		ID:           "desk-mountain-climbers",
		Name:         "Desk Mountain Climbers",
		Category:     models.CategoryCardio,
		MuscleGroups: []string{"Core", "Hip Flexors", "Cardio"},
		Description:  "High-intensity burst to spike heart rate safely.",
		Instructions: []string{
			"Place hands on desk in plank position.",
			"Drive right knee toward chest.",
			"Quickly switch legs, driving left knee.",
			"Find a running rhythm.",
		},
		CommonMistakes:    "Bouncing hips too high.",
		Contraindications: []string{"Wrists", "Heart Conditions"},
		Kind:              models.KindDuration,
		BaseDurationSec:   45,
		Tempo:             "Fast Rhythm",
		IntensityCue:      "Knees to chest!",
	},
	{
		ID:           "shadow-boxing-seated",
		Name:         "Seated Shadow Boxing",
		Category:     models.CategoryCardio,
		MuscleGroups: []string{"Shoulders", "Core", "Cardio"},
		Description:  "Stress relief meets cardio. Punch out the frustration.",
		Instructions: []string{
			"Sit tall, feet flat, core braced.",
			"Bring fists to chin (guard up).",
			"Punch straight out (Jab/Cross) in a rhythm.",
			"Exhale sharply on every punch.",
		},
		CommonMistakes:    "Lazy arms. Snap the punches!",
		Contraindications: []string{"Shoulders"},
		Stealth:           true,
		Kind:              models.KindDuration,
		BaseDurationSec:   45,
		Tempo:             "Fast & Snappy",
		IntensityCue:      "Exhale on impact!",
	},
	{
		ID:           "soleus-pump",
		Name:         "Soleus Pushups",
		Category:     models.CategoryCardio,
		MuscleGroups: []string{"Soleus"},
		Description:  "The \"second heart\" pump. Boost metabolism while seated.",
		Instructions: []string{
			"Keep knees bent at 90 degrees, feet flat.",
			"Raise heels as high as possible while keeping toes planted.",
			"Drop heels down freely.",
			"Repeat rapidly and continuously.",
		},
		CommonMistakes:  "Going too slow. Aim for a rhythmic bounce.",
		Stealth:         true,
		Kind:            models.KindDuration,
		BaseDurationSec: 60,
		Tempo:           "Rapid Bounce",
		IntensityCue:    "Faster!",
	},

	// Mobility / posture
	{
		ID:           "bird-dog-desk",
		Name:         "Standing Bird Dog",
		Category:     models.CategoryPosture,
		MuscleGroups: []string{"Core", "Lower Back", "Glutes"},
		Description:  "Fix your posture and wake up your back muscles.",
		Instructions: []string{
			"Stand facing your desk, hands resting on surface.",
			"Extend right arm forward and left leg backward.",
			"Keep back straight. Hold for 3 seconds.",
			"Switch sides.",
		},
		CommonMistakes:    "Arching back excessively.",
		Contraindications: []string{"Back", "Balance"},
		Kind:              models.KindReps,
		BaseReps:          10,
		Tempo:             "Hold 3s",
		IntensityCue:      "Reach long!",
	},
	{
		ID:           "thoracic-opener",
		Name:         "Thoracic Opener",
		Category:     models.CategoryMobility,
		MuscleGroups: []string{"Upper Back", "Chest"},
		Description:  "The ultimate anti-slouch movement.",
		Instructions: []string{
			"Sit tall, hands behind head, elbows wide.",
			"Inhale, arch upper back over the chair top.",
			"Open elbows wide to stretch chest.",
			"Exhale and return to neutral.",
		},
		CommonMistakes:    "Arching lower back instead of upper back.",
		Contraindications: []string{"Neck", "Back"},
		Stealth:           true,
		Kind:              models.KindReps,
		BaseReps:          10,
		Tempo:             "Slow & Controlled",
		IntensityCue:      "Open your chest!",
	},
	{
		ID:           "seated-spinal-twist",
		Name:         "Seated Spinal Twist",
		Category:     models.CategoryMobility,
		MuscleGroups: []string{"Obliques", "Spinal Erectors"},
		Description:  "Instant relief for a stiff back.",
		Instructions: []string{
			"Sit tall, feet flat.",
			"Exhale and rotate torso to the right.",
			"Use chair arm/back for gentle leverage.",
			"Hold 20s, then switch.",
		},
		CommonMistakes:    "Forcing the rotation.",
		Contraindications: []string{"Back"},
		Stealth:           true,
		Kind:              models.KindDuration,
		BaseDurationSec:   40,
		Tempo:             "Static Hold",
		IntensityCue:      "Grow taller!",
	},

	// Stealth / isometric
	{
		ID:           "stealth-glute-clench",
		Name:         "Stealth Glute Clench",
		Category:     models.CategoryStrength,
		MuscleGroups: []string{"Glutes"},
		Description:  "Invisible on camera, deadly to \"dormant butt syndrome\".",
		Instructions: []string{
			"Sit tall in your chair.",
			"Squeeze glutes hard, elevating body slightly.",
			"Hold for 5 seconds.",
			"Release.",
		},
		CommonMistakes: "Holding breath.",
		Stealth:        true,
		Kind:           models.KindReps,
		BaseReps:       15,
		Tempo:          "Hold 5s",
		IntensityCue:   "Squeeze Hard!",
	},
	{
		ID:           "under-desk-leg-extension",
		Name:         "Stealth Leg Extension",
		Category:     models.CategoryStrength,
		MuscleGroups: []string{"Quadriceps", "Knees"},
		Description:  "Strengthen knees while analyzing spreadsheets.",
		Instructions: []string{
			"Sit with feet flat.",
			"Straighten one leg under desk until knee locks.",
			"Flex quad muscle hard at the top (2s).",
			"Lower slowly.",
		},
		CommonMistakes: "Kicking the desk.",
		Stealth:        true,
		Kind:           models.KindReps,
		BaseReps:       12,
		Tempo:          "2s Hold at Top",
		IntensityCue:   "Lock the knee!",
	},
	{
		ID:           "desk-plank-hold",
		Name:         "Desk Plank Hold",
		Category:     models.CategoryStrength,
		MuscleGroups: []string{"Core", "Shoulders"},
		Description:  "Total body tension reset.",
		Instructions: []string{
			"Hands on desk edge, walk feet back.",
			"Body in straight line.",
			"Brace abs as if about to be punched.",
			"Hold and breathe deeply.",
		},
		CommonMistakes:    "Holding breath; sagging hips.",
		Contraindications: []string{"Wrists", "Shoulders"},
		Kind:              models.KindDuration,
		BaseDurationSec:   45,
		Tempo:             "Static Hold",
		IntensityCue:      "Brace your core!",
	},
}

// FindExercise looks up a catalog entry by id.
func FindExercise(id string) (models.Exercise, bool) {
	for _, ex := range Exercises {
		if ex.ID == id {
			return ex, true
		}
	}
	return models.Exercise{}, false
}
