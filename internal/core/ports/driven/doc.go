// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - StoreFactory: Opens read-only handles onto a profile's databases
//   - PlacesHandle / RecordCursor: Record store access for one operation
//   - IconHandle: Icon store access for one operation
//   - ProfileConfigStore: Profile list persistence
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - IconDecoder: Favicon decoding. Without it, results carry no icon
//     and the host falls back to its default glyph.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
