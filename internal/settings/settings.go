// Package settings persists the user-facing scanner preferences.
package settings

import (
	"encoding/json"
	"os"
	"sync"
)

// Values are the persisted preferences. SaveHistory gates whether new
// scans are written to storage at all.
type Values struct {
	ScanSoundEnabled     bool `json:"scan_sound_enabled"`
	ScanVibrationEnabled bool `json:"scan_vibration_enabled"`
	SaveHistory          bool `json:"save_history"`
	HistoryLimit         int  `json:"history_limit"`
}

func defaults() Values {
	return Values{
		ScanSoundEnabled:     true,
		ScanVibrationEnabled: true,
		SaveHistory:          true,
		HistoryLimit:         500,
	}
}

// Store is a file-backed settings store: loaded once at start, written
// through on every change.
type Store struct {
	mu     sync.RWMutex
	values Values
	path   string
}

// NewStore creates or loads the settings file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		values: defaults(),
		path:   path,
	}
	if err := s.load(); err != nil {
		// missing file just means defaults
		if !os.IsNotExist(err) {
			return nil, err
		}
	}
	return s, nil
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, &s.values)
}

// Get returns a snapshot of the current values.
func (s *Store) Get() Values {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values
}

// Set replaces the values and persists them to disk.
func (s *Store) Set(v Values) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v.HistoryLimit <= 0 {
		v.HistoryLimit = defaults().HistoryLimit
	}
	s.values = v

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}
