// Package settings persists the business identity used in proposal footers.
package settings

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"sync"

	"github.com/wenlaunch/proposal-backend/internal/proposal/domain"
)

// Store reads and writes the settings JSON file. The mutex guards the file
// against concurrent handler writes.
type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the stored settings, or zero settings when the file does not
// exist yet.
func (s *Store) Load() (domain.BusinessSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out domain.BusinessSettings
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return out, nil
	}
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return domain.BusinessSettings{}, err
	}
	return out, nil
}

// Save overwrites the settings file.
func (s *Store) Save(settings domain.BusinessSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}
