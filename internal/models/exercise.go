// ABOUTME: Exercise catalog entry model with category and kind discriminators.
// ABOUTME: Exactly one of BaseReps/BaseDurationSec is authoritative, per Kind.
package models

// Category classifies an exercise. The set is closed.
type Category string

const (
	CategoryStrength Category = "strength"
	CategoryMobility Category = "mobility"
	CategoryCardio   Category = "cardio"
	CategoryPosture  Category = "posture"
)

// AllCategories returns all valid exercise categories.
var AllCategories = []Category{
	CategoryStrength, CategoryMobility, CategoryCardio, CategoryPosture,
}

// ExerciseKind discriminates rep-counted from duration-held exercises.
type ExerciseKind string

const (
	KindReps     ExerciseKind = "reps"
	KindDuration ExerciseKind = "duration"
)

// Exercise is a read-only catalog entry. The core never mutates these.
type Exercise struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Category       Category `json:"category"`
	MuscleGroups   []string `json:"muscle_groups"`
	Description    string   `json:"description"`
	Instructions   []string `json:"instructions"`
	CommonMistakes string   `json:"common_mistakes,omitempty"`

	// Contraindications lists injury tags that make this movement unsafe
	// without modification.
	Contraindications []string `json:"contraindications"`

	// Stealth marks movements invisible on a webcam (seated/isometric).
	Stealth bool `json:"stealth"`

	Kind            ExerciseKind `json:"kind"`
	BaseReps        int          `json:"base_reps"`
	BaseDurationSec int          `json:"base_duration_sec,omitempty"`

	Tempo        string `json:"tempo,omitempty"`
	IntensityCue string `json:"intensity_cue,omitempty"`
}

// ScaledSettings is the ephemeral output of the scaling engine.
// Recomputed per exercise per session and never persisted.
type ScaledSettings struct {
	Reps               int    `json:"reps"`
	DurationSec        int    `json:"duration_sec"`
	RestSec            int    `json:"rest_sec"`
	IntensityLabel     string `json:"intensity_label"`
	ModificationAdvice string `json:"modification_advice"`
}
