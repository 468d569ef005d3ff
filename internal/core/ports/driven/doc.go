// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - GistSource: Supplies the raw gist list (already fetched, in memory)
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - TagLookup: Secondary per-document tag lookup. Without it, tags
//     fall back to whatever the supplier embedded in the raw record.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
