package firefox

import (
	"database/sql"
	"fmt"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/foxfind/internal/core/domain"
	"github.com/custodia-labs/foxfind/internal/core/ports/driven"
)

// Database file names inside a profile directory.
const (
	placesFile = "places.sqlite"
	iconsFile  = "favicons.sqlite"
)

// Ensure Factory implements the interface.
var _ driven.StoreFactory = (*Factory)(nil)

// Factory opens short-lived read-only handles onto profile databases.
type Factory struct{}

// NewFactory creates a new store factory.
func NewFactory() *Factory {
	return &Factory{}
}

// OpenPlaces opens the profile's record database read-only.
func (f *Factory) OpenPlaces(profilePath string) (driven.PlacesHandle, error) {
	db, err := openReadOnly(filepath.Join(profilePath, placesFile))
	if err != nil {
		return nil, err
	}
	return &placesHandle{db: db}, nil
}

// OpenIcons opens the profile's icon database read-only.
func (f *Factory) OpenIcons(profilePath string) (driven.IconHandle, error) {
	db, err := openReadOnly(filepath.Join(profilePath, iconsFile))
	if err != nil {
		return nil, err
	}
	return &iconHandle{db: db}, nil
}

// openReadOnly opens a single read-only connection. Pooling stays
// disabled: Firefox may hold exclusive locks on its own databases, so
// connections are never reused across operations.
func openReadOnly(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStoreUnavailable, path, err)
	}
	db.SetMaxOpenConns(1)

	// sql.Open is lazy; surface missing, locked or corrupt files now.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStoreUnavailable, path, err)
	}

	return db, nil
}
