// ABOUTME: Circuit generator selecting a balanced daily set of exercises.
// ABOUTME: Randomness is injected so tests can supply a seeded source.
package circuit

import (
	"math/rand/v2"

	"github.com/harperreed/deskflow/internal/models"
)

// Size is the number of exercises in a generated circuit.
const Size = 3

// Generator selects daily circuits from an exercise catalog.
type Generator struct {
	rng *rand.Rand
}

// New creates a generator with the given random source.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// NewDefault creates a generator seeded from the shared runtime source.
func NewDefault() *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// Generate assembles a circuit of up to Size unique exercises: one
// strength, one cardio, and one mobility-or-posture pick, topped up with
// random unique draws. Stealth mode restricts the pool to webcam-safe
// movements; a small filtered pool may yield fewer distinct categories,
// and a pool smaller than Size yields a shorter circuit.
func (g *Generator) Generate(catalog []models.Exercise, stealthOnly bool) []models.Exercise {
	pool := filterPool(catalog, stealthOnly)
	if len(pool) == 0 {
		return nil
	}

	strength := byCategory(pool, models.CategoryStrength)
	cardio := byCategory(pool, models.CategoryCardio)
	mobility := byCategories(pool, models.CategoryMobility, models.CategoryPosture)

	// Positional fallbacks keep degenerate pools (common in stealth
	// mode) from collapsing the circuit.
	picks := []models.Exercise{
		g.pickOr(strength, pool, 0),
		g.pickOr(cardio, pool, 1),
		g.pickOr(mobility, pool, 2),
	}

	var circuit []models.Exercise
	for _, ex := range picks {
		if ex.ID != "" && !contains(circuit, ex.ID) {
			circuit = append(circuit, ex)
		}
	}

	// Top up with random unique draws until full or the pool is spent.
	for len(circuit) < Size && len(circuit) < len(pool) {
		ex := pool[g.rng.IntN(len(pool))]
		if !contains(circuit, ex.ID) {
			circuit = append(circuit, ex)
		}
	}

	return circuit
}

// pickOr picks a random entry from subset, falling back to the pool
// entry at fallbackIdx when the subset is empty.
func (g *Generator) pickOr(subset, pool []models.Exercise, fallbackIdx int) models.Exercise {
	if len(subset) > 0 {
		return subset[g.rng.IntN(len(subset))]
	}
	if fallbackIdx < len(pool) {
		return pool[fallbackIdx]
	}
	return models.Exercise{}
}

func filterPool(catalog []models.Exercise, stealthOnly bool) []models.Exercise {
	if !stealthOnly {
		return catalog
	}
	var pool []models.Exercise
	for _, ex := range catalog {
		if ex.Stealth {
			pool = append(pool, ex)
		}
	}
	return pool
}

func byCategory(pool []models.Exercise, cat models.Category) []models.Exercise {
	var out []models.Exercise
	for _, ex := range pool {
		if ex.Category == cat {
			out = append(out, ex)
		}
	}
	return out
}

func byCategories(pool []models.Exercise, cats ...models.Category) []models.Exercise {
	var out []models.Exercise
	for _, ex := range pool {
		for _, cat := range cats {
			if ex.Category == cat {
				out = append(out, ex)
				break
			}
		}
	}
	return out
}

func contains(exercises []models.Exercise, id string) bool {
	for _, ex := range exercises {
		if ex.ID == id {
			return true
		}
	}
	return false
}
