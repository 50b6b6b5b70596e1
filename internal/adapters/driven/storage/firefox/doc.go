// Package firefox provides read-only access to a Firefox profile's
// on-disk databases, implementing the driven store ports.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation
// that requires no CGO, enabling easy cross-compilation. Two databases
// are read per profile directory:
//
//   - places.sqlite: bookmark and history rows (moz_places, moz_bookmarks)
//   - favicons.sqlite: favicon blobs (moz_pages_w_icons,
//     moz_icons_to_pages, moz_icons)
//
// # Access Discipline
//
// The schemas are owned by Firefox; this adapter never writes and never
// migrates. Every handle opens its own single read-only connection
// (mode=ro, no pooling) and lives for exactly one operation, so a
// running Firefox holding locks on the same files is disturbed as
// little as possible. Open failures wrap domain.ErrStoreUnavailable and
// the affected profile is simply skipped by the caller.
package firefox
