// ABOUTME: Tests for the circuit generator.
// ABOUTME: Covers category balance, uniqueness, stealth filtering, and small pools.
package circuit

import (
	"math/rand/v2"
	"testing"

	"github.com/harperreed/deskflow/internal/models"
)

var testCatalog = []models.Exercise{
	{ID: "squat", Category: models.CategoryStrength},
	{ID: "pushup", Category: models.CategoryStrength},
	{ID: "climbers", Category: models.CategoryCardio},
	{ID: "boxing", Category: models.CategoryCardio, Stealth: false},
	{ID: "twist", Category: models.CategoryMobility, Stealth: true},
	{ID: "opener", Category: models.CategoryPosture},
	{ID: "clench", Category: models.CategoryStrength, Stealth: true},
	{ID: "soleus", Category: models.CategoryCardio, Stealth: true},
}

func seeded() *Generator {
	return New(rand.New(rand.NewPCG(1, 2)))
}

func categoryOf(id string) models.Category {
	for _, ex := range testCatalog {
		if ex.ID == id {
			return ex.Category
		}
	}
	return ""
}

func TestGenerateBalanced(t *testing.T) {
	circuit := seeded().Generate(testCatalog, false)

	if len(circuit) != Size {
		t.Fatalf("len(circuit) = %d, want %d", len(circuit), Size)
	}

	// One pick per slot category.
	if categoryOf(circuit[0].ID) != models.CategoryStrength {
		t.Errorf("slot 0 = %s, want strength", circuit[0].ID)
	}
	if categoryOf(circuit[1].ID) != models.CategoryCardio {
		t.Errorf("slot 1 = %s, want cardio", circuit[1].ID)
	}
	if cat := categoryOf(circuit[2].ID); cat != models.CategoryMobility && cat != models.CategoryPosture {
		t.Errorf("slot 2 = %s, want mobility or posture", circuit[2].ID)
	}
}

func TestGenerateUnique(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		gen := New(rand.New(rand.NewPCG(seed, seed)))
		circuit := gen.Generate(testCatalog, false)

		seen := make(map[string]bool)
		for _, ex := range circuit {
			if seen[ex.ID] {
				t.Fatalf("seed %d: duplicate exercise %s", seed, ex.ID)
			}
			seen[ex.ID] = true
		}
	}
}

func TestGenerateStealth(t *testing.T) {
	circuit := seeded().Generate(testCatalog, true)

	if len(circuit) != Size {
		t.Fatalf("len(circuit) = %d, want %d", len(circuit), Size)
	}
	for _, ex := range circuit {
		if !ex.Stealth {
			t.Errorf("non-stealth exercise %s in stealth circuit", ex.ID)
		}
	}
}

func TestGenerateSmallPool(t *testing.T) {
	small := []models.Exercise{
		{ID: "only-squat", Category: models.CategoryStrength},
		{ID: "only-twist", Category: models.CategoryMobility},
	}

	circuit := seeded().Generate(small, false)

	if len(circuit) != 2 {
		t.Fatalf("len(circuit) = %d, want 2 (pool exhausted)", len(circuit))
	}
}

func TestGenerateEmptyPool(t *testing.T) {
	if got := seeded().Generate(nil, false); got != nil {
		t.Errorf("Generate(nil) = %v, want nil", got)
	}

	noStealth := []models.Exercise{{ID: "squat", Category: models.CategoryStrength}}
	if got := seeded().Generate(noStealth, true); got != nil {
		t.Errorf("stealth over non-stealth pool = %v, want nil", got)
	}
}
