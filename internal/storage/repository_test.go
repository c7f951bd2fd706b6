// ABOUTME: Contract tests run against every Repository backend.
// ABOUTME: Covers profile roundtrips, session ordering, reset, and import.
package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/harperreed/deskflow/internal/models"
)

func openBackends(t *testing.T) map[string]Repository {
	t.Helper()

	kv, err := OpenKV(filepath.Join(t.TempDir(), "kv"))
	if err != nil {
		t.Fatalf("open badger: %v", err)
	}
	db, err := Open(filepath.Join(t.TempDir(), "deskflow.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	t.Cleanup(func() {
		kv.Close()
		db.Close()
	})

	return map[string]Repository{"badger": kv, "sqlite": db}
}

func TestProfileRoundtrip(t *testing.T) {
	for name, repo := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := repo.GetProfile(); !errors.Is(err, ErrNoProfile) {
				t.Errorf("GetProfile on empty store = %v, want ErrNoProfile", err)
			}

			p := &models.Profile{
				Name:        "Alex",
				Age:         34,
				WeightKg:    82,
				HeightCm:    178,
				Injuries:    []string{"Knees"},
				RiskProfile: models.RiskModified,
			}
			if err := repo.SaveProfile(p); err != nil {
				t.Fatalf("SaveProfile: %v", err)
			}

			got, err := repo.GetProfile()
			if err != nil {
				t.Fatalf("GetProfile: %v", err)
			}
			if got.Name != "Alex" || got.Age != 34 || got.RiskProfile != models.RiskModified {
				t.Errorf("roundtrip mismatch: %+v", got)
			}
			if len(got.Injuries) != 1 || got.Injuries[0] != "Knees" {
				t.Errorf("Injuries = %v, want [Knees]", got.Injuries)
			}

			// Saving again overwrites, never duplicates.
			p.Age = 35
			if err := repo.SaveProfile(p); err != nil {
				t.Fatalf("SaveProfile update: %v", err)
			}
			got, err = repo.GetProfile()
			if err != nil {
				t.Fatalf("GetProfile after update: %v", err)
			}
			if got.Age != 35 {
				t.Errorf("Age = %d, want 35", got.Age)
			}
		})
	}
}

func TestSessionLogOrdering(t *testing.T) {
	base := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

	for name, repo := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			// Append out of chronological order.
			for _, offset := range []int{2, 0, 1} {
				s := models.NewSession(180, 3, 20, models.ModeActive).
					WithDate(base.Add(time.Duration(offset) * time.Hour))
				if err := repo.AppendSession(s); err != nil {
					t.Fatalf("AppendSession: %v", err)
				}
			}

			sessions, err := repo.ListSessions()
			if err != nil {
				t.Fatalf("ListSessions: %v", err)
			}
			if len(sessions) != 3 {
				t.Fatalf("len(sessions) = %d, want 3", len(sessions))
			}
			for i := 1; i < len(sessions); i++ {
				if sessions[i].Date.Before(sessions[i-1].Date) {
					t.Errorf("sessions out of order at %d: %v before %v", i, sessions[i].Date, sessions[i-1].Date)
				}
			}
		})
	}
}

func TestResetSessionsKeepsProfile(t *testing.T) {
	for name, repo := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			if err := repo.SaveProfile(&models.Profile{Name: "Alex"}); err != nil {
				t.Fatalf("SaveProfile: %v", err)
			}
			if err := repo.AppendSession(models.NewSession(60, 1, 5, models.ModeStealth)); err != nil {
				t.Fatalf("AppendSession: %v", err)
			}

			if err := repo.ResetSessions(); err != nil {
				t.Fatalf("ResetSessions: %v", err)
			}

			sessions, err := repo.ListSessions()
			if err != nil {
				t.Fatalf("ListSessions: %v", err)
			}
			if len(sessions) != 0 {
				t.Errorf("len(sessions) = %d after reset, want 0", len(sessions))
			}

			if _, err := repo.GetProfile(); err != nil {
				t.Errorf("profile should survive reset: %v", err)
			}
		})
	}
}

func TestExportImportAcrossBackends(t *testing.T) {
	backends := openBackends(t)
	src := backends["badger"]
	dst := backends["sqlite"]

	if err := src.SaveProfile(&models.Profile{Name: "Alex", Age: 34}); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
	if err := src.AppendSession(models.NewSession(180, 3, 20, models.ModeActive)); err != nil {
		t.Fatalf("AppendSession: %v", err)
	}

	data, err := src.GetAllData()
	if err != nil {
		t.Fatalf("GetAllData: %v", err)
	}
	if data.Tool != "deskflow" || data.Profile == nil || len(data.Sessions) != 1 {
		t.Fatalf("unexpected export: %+v", data)
	}

	if err := dst.ImportData(data); err != nil {
		t.Fatalf("ImportData: %v", err)
	}

	p, err := dst.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile after import: %v", err)
	}
	if p.Name != "Alex" {
		t.Errorf("Name = %q, want Alex", p.Name)
	}
	sessions, err := dst.ListSessions()
	if err != nil {
		t.Fatalf("ListSessions after import: %v", err)
	}
	if len(sessions) != 1 {
		t.Errorf("len(sessions) = %d, want 1", len(sessions))
	}
}
