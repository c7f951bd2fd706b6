// ABOUTME: SQLite backend using modernc.org/sqlite (pure Go, no CGO).
// ABOUTME: Single-row profile table plus an append-only sessions table.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/deskflow/internal/models"
	_ "modernc.org/sqlite"
)

// DB is the SQLite-backed Repository implementation.
type DB struct {
	db     *sql.DB
	dbPath string
}

// Open opens or creates a SQLite database at the given path.
func Open(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	d := &DB{db: db, dbPath: dbPath}

	if err := d.configurePragmas(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure pragmas: %w", err)
	}

	if err := d.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return d, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

func (d *DB) configurePragmas() error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := d.db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %s: %w", pragma, err)
		}
	}
	return nil
}

func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS profile (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		record TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		date DATETIME NOT NULL,
		duration_seconds INTEGER NOT NULL,
		exercises_completed INTEGER NOT NULL,
		calories_burned INTEGER NOT NULL,
		mode TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_date ON sessions(date ASC);
	`

	_, err := d.db.Exec(schema)
	return err
}

// SaveProfile upserts the single profile row. The profile is stored as a
// JSON record so the schema never lags the model.
func (d *DB) SaveProfile(p *models.Profile) error {
	record, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	query := `
		INSERT INTO profile (id, record, updated_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET record = excluded.record, updated_at = excluded.updated_at
	`
	if _, err := d.db.Exec(query, string(record), time.Now().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// GetProfile retrieves the stored profile, or ErrNoProfile.
func (d *DB) GetProfile() (*models.Profile, error) {
	var record string
	err := d.db.QueryRow("SELECT record FROM profile WHERE id = 1").Scan(&record)
	if err == sql.ErrNoRows {
		return nil, ErrNoProfile
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	var p models.Profile
	if err := json.Unmarshal([]byte(record), &p); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	return &p, nil
}

// AppendSession inserts a session record.
func (d *DB) AppendSession(s *models.Session) error {
	query := `
		INSERT INTO sessions (id, date, duration_seconds, exercises_completed, calories_burned, mode)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		s.ID.String(),
		s.Date.Format(time.RFC3339),
		s.DurationSeconds,
		s.ExercisesCompleted,
		s.CaloriesBurned,
		string(s.Mode),
	)
	if err != nil {
		return fmt.Errorf("append session: %w", err)
	}
	return nil
}

// ListSessions returns all sessions ordered by date ascending.
func (d *DB) ListSessions() ([]*models.Session, error) {
	query := `
		SELECT id, date, duration_seconds, exercises_completed, calories_burned, mode
		FROM sessions
		ORDER BY date ASC
	`
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*models.Session
	for rows.Next() {
		var s models.Session
		var idStr, dateStr, mode string
		if err := rows.Scan(&idStr, &dateStr, &s.DurationSeconds, &s.ExercisesCompleted, &s.CaloriesBurned, &mode); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		s.ID, _ = uuid.Parse(idStr)
		s.Date, _ = time.Parse(time.RFC3339, dateStr)
		s.Mode = models.SessionMode(mode)
		sessions = append(sessions, &s)
	}

	return sessions, rows.Err()
}

// ResetSessions deletes all session records. The profile survives.
func (d *DB) ResetSessions() error {
	if _, err := d.db.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("reset sessions: %w", err)
	}
	return nil
}

// GetAllData retrieves the full store contents for export.
func (d *DB) GetAllData() (*ExportData, error) {
	return collectExport(d)
}

// ImportData writes an export snapshot into the store.
func (d *DB) ImportData(data *ExportData) error {
	return applyImport(d, data)
}
