package services

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/custodia-labs/foxfind/internal/core/domain"
	"github.com/custodia-labs/foxfind/internal/core/ports/driven"
	"github.com/custodia-labs/foxfind/internal/core/ports/driving"
	"github.com/custodia-labs/foxfind/internal/logger"
)

// placesFileName marks a directory as a Firefox profile during
// discovery.
const placesFileName = "places.sqlite"

// Ensure ProfileService implements the interface.
var _ driving.ProfileService = (*ProfileService)(nil)

// ProfileService manages the configured Firefox profiles: listing,
// toggling and on-disk discovery.
type ProfileService struct {
	config driven.ProfileConfigStore
	root   string
}

// NewProfileService creates a new profile service. profilesRoot is the
// directory scanned by Discover; see DefaultProfilesRoot.
func NewProfileService(config driven.ProfileConfigStore, profilesRoot string) *ProfileService {
	return &ProfileService{
		config: config,
		root:   profilesRoot,
	}
}

// DefaultProfilesRoot returns the platform's Firefox profile root.
func DefaultProfilesRoot() string {
	if runtime.GOOS == osWindows {
		return filepath.Join(os.Getenv("APPDATA"), "Mozilla", "Firefox", "Profiles")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	if runtime.GOOS == osDarwin {
		return filepath.Join(home, "Library", "Application Support", "Firefox", "Profiles")
	}
	return filepath.Join(home, ".mozilla", "firefox")
}

// List returns the configured profiles in order.
func (s *ProfileService) List(_ context.Context) ([]domain.Profile, error) {
	profiles, err := s.config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading profiles: %w", err)
	}
	return profiles, nil
}

// SetEnabled toggles one profile, matched by path case-insensitively.
func (s *ProfileService) SetEnabled(_ context.Context, path string, enabled bool) error {
	if path == "" {
		return fmt.Errorf("%w: empty profile path", domain.ErrInvalidInput)
	}

	profiles, err := s.config.Load()
	if err != nil {
		return fmt.Errorf("loading profiles: %w", err)
	}

	for i := range profiles {
		if domain.SamePath(profiles[i].Path, path) {
			profiles[i].Enabled = enabled
			return s.config.Save(profiles)
		}
	}
	return fmt.Errorf("%w: profile %s", domain.ErrNotFound, path)
}

// Discover scans the profiles root for directories holding a places
// database and merges them with the stored list. Stored profiles keep
// their enabled flags and are never dropped; newly found profiles
// default to enabled when their directory name contains "default".
// The merged list is persisted and returned.
func (s *ProfileService) Discover(_ context.Context) ([]domain.Profile, error) {
	found, err := discoverProfiles(s.root)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", s.root, err)
	}
	logger.Debug("Discovered %d profile(s) under %s", len(found), s.root)

	stored, err := s.config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading profiles: %w", err)
	}

	// Stored entries win on the enabled flag and may reference
	// profiles that no longer exist on disk; keep them anyway.
	merged := domain.MergeProfiles(found, stored)

	if err := s.config.Save(merged); err != nil {
		return nil, fmt.Errorf("saving profiles: %w", err)
	}
	return merged, nil
}

// discoverProfiles walks root for places databases. A missing or
// unreadable root yields an empty list, not an error.
func discoverProfiles(root string) ([]domain.Profile, error) {
	if root == "" {
		return nil, nil
	}

	var profiles []domain.Profile //nolint:prealloc // profile count unknown
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // unreadable subtree, keep walking
		}
		if entry.IsDir() || entry.Name() != placesFileName {
			return nil
		}

		dir := filepath.Dir(path)
		name := filepath.Base(dir)
		profiles = append(profiles, domain.Profile{
			Path:    dir,
			Name:    name,
			Enabled: strings.Contains(strings.ToLower(name), "default"),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return profiles, nil
}
