package driven

import "github.com/custodia-labs/foxfind/internal/core/domain"

// ProfileConfigStore persists the ordered Firefox profile list with
// enabled flags. The core only ever reads the enabled subset; edits
// come in through the profile service.
type ProfileConfigStore interface {
	// Load returns the configured profiles in order. A store that has
	// never been written returns an empty list, not an error.
	Load() ([]domain.Profile, error)

	// Save persists the profile list, preserving order.
	Save(profiles []domain.Profile) error
}
