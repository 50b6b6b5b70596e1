package driven

import (
	"context"
	"image"

	"github.com/custodia-labs/foxfind/internal/core/domain"
)

// StoreFactory opens short-lived, read-only handles onto a profile's
// on-disk databases. Open failures wrap domain.ErrStoreUnavailable;
// callers treat them as "skip this profile", never as fatal.
//
// A handle is exclusive to the operation that opened it: it is never
// shared across concurrent operations and must be closed on every exit
// path before the operation returns.
type StoreFactory interface {
	// OpenPlaces opens the profile's record database (places.sqlite).
	OpenPlaces(profilePath string) (PlacesHandle, error)

	// OpenIcons opens the profile's icon database (favicons.sqlite).
	OpenIcons(profilePath string) (IconHandle, error)
}

// PlacesHandle is a scoped read-only connection to one profile's
// record database.
type PlacesHandle interface {
	// QueryRecords runs the tokenised predicate query against the
	// category's base select and returns a forward-only cursor.
	// Token values are always bound as parameters, never interpolated.
	QueryRecords(ctx context.Context, category domain.Category, tokens []string) (RecordCursor, error)

	Close() error
}

// RecordCursor is a forward-only, lazily-read row cursor.
type RecordCursor interface {
	// Next advances to the next record, reporting false at the end.
	Next() bool

	// Record returns the current record. Valid only after Next
	// reported true. Null titles are normalised to empty strings.
	Record() domain.RawRecord

	// Err returns the first error hit during iteration, if any.
	Err() error

	Close() error
}

// IconHandle is a scoped read-only connection to one profile's icon
// database.
type IconHandle interface {
	// QueryIcon returns the first icon blob stored for the page URL,
	// or nil when the page has none. Placeholder icons flagged with
	// the unsupported width sentinel are excluded.
	QueryIcon(ctx context.Context, pageURL string) ([]byte, error)

	Close() error
}

// IconDecoder turns a favicon blob into a displayable image.
type IconDecoder interface {
	// Decode attempts to decode the blob exactly once. An undecodable
	// blob yields a nil image and a non-nil error; callers absorb the
	// error and proceed without an icon.
	Decode(data []byte) (image.Image, error)
}
