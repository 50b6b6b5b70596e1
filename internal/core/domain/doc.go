// Package domain defines the core business entities for Foxfind.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Profile: One Firefox profile directory with its enabled flag
//   - SearchRequest: Free text plus a category tag and request kind
//   - RawRecord: One row read from a profile's places database
//   - SearchResult: A scored, icon-annotated search hit
//   - ResultIdentity: The re-entry key for later icon resolution
//   - ResultStream: A lazy, pull-driven result sequence
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
