package file

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/foxfind/internal/core/domain"
	"github.com/custodia-labs/foxfind/internal/core/ports/driven"
)

// Ensure ProfileStore implements the interface.
var _ driven.ProfileConfigStore = (*ProfileStore)(nil)

// ProfileStore is a file-based implementation of
// driven.ProfileConfigStore using TOML. The profile list is stored in
// order within the foxfind config directory.
type ProfileStore struct {
	mu       sync.RWMutex
	filePath string
}

// profileDocument is the on-disk TOML shape.
type profileDocument struct {
	Profiles []profileEntry `toml:"profiles"`
}

type profileEntry struct {
	Path    string `toml:"path"`
	Name    string `toml:"name"`
	Enabled bool   `toml:"enabled"`
}

// NewProfileStore creates a new TOML-based profile store.
// If configDir is empty, defaults to ~/.foxfind/profiles.toml.
func NewProfileStore(configDir string) (*ProfileStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".foxfind")
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	return &ProfileStore{
		filePath: filepath.Join(configDir, "profiles.toml"),
	}, nil
}

// Load reads the profile list. A store that has never been written
// yields an empty list.
func (s *ProfileStore) Load() ([]domain.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var doc profileDocument
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	profiles := make([]domain.Profile, 0, len(doc.Profiles))
	for _, e := range doc.Profiles {
		profiles = append(profiles, domain.Profile{
			Path:    e.Path,
			Name:    e.Name,
			Enabled: e.Enabled,
		})
	}
	return profiles, nil
}

// Save persists the profile list, preserving order.
func (s *ProfileStore) Save(profiles []domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := profileDocument{Profiles: make([]profileEntry, 0, len(profiles))}
	for _, p := range profiles {
		doc.Profiles = append(doc.Profiles, profileEntry{
			Path:    p.Path,
			Name:    p.Name,
			Enabled: p.Enabled,
		})
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		return err
	}

	// Write with restricted permissions
	return os.WriteFile(s.filePath, data, 0600)
}

// Path returns the configuration file path.
func (s *ProfileStore) Path() string {
	return s.filePath
}
