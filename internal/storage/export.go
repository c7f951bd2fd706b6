// ABOUTME: Export and import snapshot format shared by all backends.
// ABOUTME: Supports JSON and YAML serialization.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/deskflow/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData is the full snapshot format for deskflow data.
type ExportData struct {
	Version    string            `json:"version" yaml:"version"`
	ExportedAt time.Time         `json:"exported_at" yaml:"exported_at"`
	Tool       string            `json:"tool" yaml:"tool"`
	Profile    *models.Profile   `json:"profile,omitempty" yaml:"profile,omitempty"`
	Sessions   []*models.Session `json:"sessions" yaml:"sessions"`
}

// Marshal serializes a snapshot in the requested format ("json" or "yaml").
func (e *ExportData) Marshal(format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(e, "", "  ")
	case "yaml":
		return yaml.Marshal(e)
	default:
		return nil, fmt.Errorf("unknown export format: %q", format)
	}
}

// UnmarshalExport parses a snapshot, trying JSON first and YAML second.
func UnmarshalExport(data []byte) (*ExportData, error) {
	var e ExportData
	if err := json.Unmarshal(data, &e); err == nil {
		return &e, nil
	}
	if err := yaml.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("parse export data: %w", err)
	}
	return &e, nil
}

// collectExport assembles a snapshot from any Repository.
func collectExport(r Repository) (*ExportData, error) {
	profile, err := r.GetProfile()
	if err != nil && !errors.Is(err, ErrNoProfile) {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	sessions, err := r.ListSessions()
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "deskflow",
		Profile:    profile,
		Sessions:   sessions,
	}, nil
}

// applyImport writes a snapshot into any Repository.
func applyImport(r Repository, data *ExportData) error {
	if data.Profile != nil {
		if err := r.SaveProfile(data.Profile); err != nil {
			return fmt.Errorf("import profile: %w", err)
		}
	}
	for _, s := range data.Sessions {
		if err := r.AppendSession(s); err != nil {
			return fmt.Errorf("import session: %w", err)
		}
	}
	return nil
}
