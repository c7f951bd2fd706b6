// ABOUTME: Badger KV backend storing prefix-keyed JSON records.
// ABOUTME: Profile under a fixed key, sessions under session:<uuid> keys.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/harperreed/deskflow/internal/models"
)

const (
	profileKey    = "profile"
	sessionPrefix = "session:"
)

// KV is the badger-backed Repository implementation.
type KV struct {
	db *badger.DB
}

// OpenKV opens or creates a badger store rooted at dir.
func OpenKV(dir string) (*KV, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open kv store: %w", err)
	}

	return &KV{db: db}, nil
}

// Close closes the underlying badger database.
func (k *KV) Close() error {
	if k.db != nil {
		return k.db.Close()
	}
	return nil
}

// SaveProfile stores the profile as a single JSON record.
func (k *KV) SaveProfile(p *models.Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	err = k.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(profileKey), data)
	})
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// GetProfile retrieves the stored profile, or ErrNoProfile.
func (k *KV) GetProfile() (*models.Profile, error) {
	var p models.Profile
	err := k.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(profileKey))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &p)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNoProfile
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

// AppendSession stores a session record under its UUID key.
func (k *KV) AppendSession(s *models.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	key := []byte(sessionPrefix + s.ID.String())
	err = k.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
	if err != nil {
		return fmt.Errorf("append session: %w", err)
	}
	return nil
}

// ListSessions returns all session records ordered by date ascending.
func (k *KV) ListSessions() ([]*models.Session, error) {
	var sessions []*models.Session
	err := k.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(sessionPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var s models.Session
				if err := json.Unmarshal(val, &s); err != nil {
					return fmt.Errorf("unmarshal session: %w", err)
				}
				sessions = append(sessions, &s)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	// Keys iterate in UUID order; restore chronological order.
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].Date.Before(sessions[j].Date)
	})
	return sessions, nil
}

// ResetSessions removes every session record. The profile survives.
func (k *KV) ResetSessions() error {
	err := k.db.Update(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(sessionPrefix)
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		var keys [][]byte
		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("reset sessions: %w", err)
	}
	return nil
}

// GetAllData retrieves the full store contents for export.
func (k *KV) GetAllData() (*ExportData, error) {
	return collectExport(k)
}

// ImportData writes an export snapshot into the store.
func (k *KV) ImportData(data *ExportData) error {
	return applyImport(k, data)
}
