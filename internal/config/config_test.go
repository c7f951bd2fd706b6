// ABOUTME: Tests for configuration defaults and the backend factory.
// ABOUTME: Uses env overrides and temp dirs; never touches real user data.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	c := &Config{}

	if got := c.GetBackend(); got != "badger" {
		t.Errorf("GetBackend() = %q, want badger", got)
	}
	if got := c.GetDailyTarget(); got != 6 {
		t.Errorf("GetDailyTarget() = %d, want 6", got)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/data", filepath.Join(home, "data")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}

	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOpenStorageBackends(t *testing.T) {
	for _, backend := range []string{"badger", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			c := &Config{Backend: backend, DataDir: t.TempDir()}

			repo, err := c.OpenStorage()
			if err != nil {
				t.Fatalf("OpenStorage: %v", err)
			}
			if err := repo.Close(); err != nil {
				t.Errorf("Close: %v", err)
			}
		})
	}

	c := &Config{Backend: "mongodb"}
	if _, err := c.OpenStorage(); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestLoadSaveRoundtrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	// Missing file yields zero-value config, not an error.
	c, err := Load()
	if err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
	if c.Backend != "" {
		t.Errorf("Backend = %q, want empty", c.Backend)
	}

	c.Backend = "sqlite"
	c.DailyTarget = 8
	if err := c.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Backend != "sqlite" || got.DailyTarget != 8 {
		t.Errorf("roundtrip mismatch: %+v", got)
	}
}
