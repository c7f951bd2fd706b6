// ABOUTME: Tests for MCP tool handlers against a real storage backend.
// ABOUTME: Exercises profile reclassification, lockout gates, and logging.
package mcp

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/harperreed/deskflow/internal/models"
	"github.com/harperreed/deskflow/internal/storage"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	repo, err := storage.Open(filepath.Join(t.TempDir(), "deskflow.db"))
	if err != nil {
		t.Fatalf("open storage: %v", err)
	}
	t.Cleanup(func() { repo.Close() })

	s, err := NewServer(repo)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return s
}

func seedProfile(t *testing.T, s *Server, p models.Profile) {
	t.Helper()
	if err := s.repo.SaveProfile(&p); err != nil {
		t.Fatalf("seed profile: %v", err)
	}
}

func TestGetProfileWithoutOnboarding(t *testing.T) {
	s := newTestServer(t)

	_, _, err := s.handleGetProfile(context.Background(), nil, struct{}{})
	if err == nil {
		t.Error("expected error before onboarding")
	}
}

func TestUpdateProfileReclassifies(t *testing.T) {
	s := newTestServer(t)
	seedProfile(t, s, models.Profile{Name: "Alex", Age: 34, RiskProfile: models.RiskUnrestricted})

	_, out, err := s.handleUpdateProfile(context.Background(), nil, updateProfileInput{
		RedFlags: []string{"Chest Pain"},
	})
	if err != nil {
		t.Fatalf("update_profile: %v", err)
	}
	if out.Profile.RiskProfile != models.RiskRedFlag {
		t.Errorf("RiskProfile = %s, want RedFlag", out.Profile.RiskProfile)
	}

	// Clearing the symptoms unlocks again.
	_, out, err = s.handleUpdateProfile(context.Background(), nil, updateProfileInput{
		ClearRedFlags: true,
	})
	if err != nil {
		t.Fatalf("update_profile clear: %v", err)
	}
	if out.Profile.RiskProfile != models.RiskUnrestricted {
		t.Errorf("RiskProfile = %s, want Unrestricted", out.Profile.RiskProfile)
	}
}

func TestGenerateCircuitLockedOut(t *testing.T) {
	s := newTestServer(t)
	seedProfile(t, s, models.Profile{
		Name:        "Alex",
		RedFlags:    []string{"Dizziness"},
		RiskProfile: models.RiskRedFlag,
	})

	_, _, err := s.handleGenerateCircuit(context.Background(), nil, generateCircuitInput{})
	if err == nil {
		t.Error("expected lockout error for red-flag profile")
	}
}

func TestGenerateCircuitScaled(t *testing.T) {
	s := newTestServer(t)
	seedProfile(t, s, models.Profile{Name: "Pat", Age: 70, RiskProfile: models.RiskGeriatric})

	_, out, err := s.handleGenerateCircuit(context.Background(), nil, generateCircuitInput{Stealth: true})
	if err != nil {
		t.Fatalf("generate_circuit: %v", err)
	}

	exercises, ok := out.([]circuitExercise)
	if !ok {
		t.Fatalf("unexpected output type %T", out)
	}
	if len(exercises) == 0 {
		t.Fatal("empty circuit")
	}
	for _, ce := range exercises {
		if !ce.Exercise.Stealth {
			t.Errorf("non-stealth exercise %s", ce.Exercise.ID)
		}
		if ce.Settings.IntensityLabel == "Standard" {
			t.Errorf("%s: geriatric profile got standard intensity", ce.Exercise.ID)
		}
	}
}

func TestLogAndListSessions(t *testing.T) {
	s := newTestServer(t)
	seedProfile(t, s, models.Profile{Name: "Alex", WeightKg: 80, RiskProfile: models.RiskUnrestricted})

	_, out, err := s.handleLogSession(context.Background(), nil, logSessionInput{
		DurationSeconds: 180,
		Stealth:         true,
	})
	if err != nil {
		t.Fatalf("log_session: %v", err)
	}
	if out.Message == "" {
		t.Error("expected confirmation message")
	}

	sessions, err := s.repo.ListSessions()
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("len(sessions) = %d, want 1", len(sessions))
	}
	if sessions[0].Mode != models.ModeStealth {
		t.Errorf("Mode = %s, want Stealth", sessions[0].Mode)
	}
	if sessions[0].ExercisesCompleted != 3 {
		t.Errorf("ExercisesCompleted = %d, want default 3", sessions[0].ExercisesCompleted)
	}
}

func TestLogSessionLockedOut(t *testing.T) {
	s := newTestServer(t)
	seedProfile(t, s, models.Profile{
		Name:        "Alex",
		RedFlags:    []string{"Chest Pain"},
		RiskProfile: models.RiskRedFlag,
	})

	_, _, err := s.handleLogSession(context.Background(), nil, logSessionInput{DurationSeconds: 60})
	if err == nil {
		t.Error("expected lockout error for red-flag profile")
	}
}
