package driving

import (
	"context"

	"github.com/custodia-labs/foxfind/internal/core/domain"
)

// ProfileService manages the configured Firefox profiles.
type ProfileService interface {
	// List returns the configured profiles in order.
	List(ctx context.Context) ([]domain.Profile, error)

	// SetEnabled toggles one profile, matched by path
	// case-insensitively. Unknown paths return domain.ErrNotFound.
	SetEnabled(ctx context.Context, path string, enabled bool) error

	// Discover scans the profiles root for profile directories, merges
	// them with the stored list (user enabled flags win) and persists
	// the result.
	Discover(ctx context.Context) ([]domain.Profile, error)
}
