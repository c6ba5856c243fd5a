package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/NagamManaswini/CALORIE-COUNTER/models"
)

// The two logical records the app persists, each a standalone JSON file.
const (
	profileFile = "vitality_profile.json"
	logsFile    = "vitality_logs.json"
)

// Store persists the profile and the log collection as two independent JSON
// records under a data directory. Every save rewrites the whole record; there
// is no incremental persistence.
type Store struct {
	dir string
}

// NewStore creates the data directory if needed and returns a store over it.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// LoadProfile returns the saved profile. ok is false when no profile has been
// saved yet, which is what forces the setup flow.
func (s *Store) LoadProfile() (p models.UserProfile, ok bool, err error) {
	data, err := os.ReadFile(filepath.Join(s.dir, profileFile))
	if os.IsNotExist(err) {
		return p, false, nil
	}
	if err != nil {
		return p, false, fmt.Errorf("read profile record: %w", err)
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, false, fmt.Errorf("parse profile record: %w", err)
	}
	return p, true, nil
}

// SaveProfile replaces the persisted profile record.
func (s *Store) SaveProfile(p models.UserProfile) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode profile record: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, profileFile), data, 0o644); err != nil {
		return fmt.Errorf("write profile record: %w", err)
	}
	return nil
}

// LoadLogs returns the persisted entry collection in stored (insertion)
// order. A missing record is an empty collection, not an error.
func (s *Store) LoadLogs() ([]models.LogEntry, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, logsFile))
	if os.IsNotExist(err) {
		return []models.LogEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read logs record: %w", err)
	}
	var entries []models.LogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse logs record: %w", err)
	}
	if entries == nil {
		entries = []models.LogEntry{}
	}
	return entries, nil
}

// SaveLogs replaces the persisted log collection.
func (s *Store) SaveLogs(entries []models.LogEntry) error {
	if entries == nil {
		entries = []models.LogEntry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode logs record: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, logsFile), data, 0o644); err != nil {
		return fmt.Errorf("write logs record: %w", err)
	}
	return nil
}
