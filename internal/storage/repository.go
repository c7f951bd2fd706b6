// ABOUTME: Repository interface for deskflow data storage.
// ABOUTME: Defines the profile and session-log contract for all backends.
package storage

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/harperreed/deskflow/internal/models"
)

// ErrNoProfile is returned when no profile has been saved yet.
var ErrNoProfile = errors.New("no profile found: run 'deskflow onboard' first")

// Repository defines the storage contract. The core engine never owns
// storage; it computes over snapshots read from here and returns new
// snapshots to persist.
type Repository interface {
	// Profile is a single keyed record.
	SaveProfile(p *models.Profile) error
	GetProfile() (*models.Profile, error)

	// The session log is append-only. ListSessions returns sessions
	// ordered by date ascending. ResetSessions is the only way records
	// leave the log.
	AppendSession(s *models.Session) error
	ListSessions() ([]*models.Session, error)
	ResetSessions() error

	// Export/import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error

	// Lifecycle
	Close() error
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "deskflow")
}
