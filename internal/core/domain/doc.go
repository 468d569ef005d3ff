// Package domain defines the core business entities for gistfind.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A normalized, indexed gist
//   - RawGist: The supplier-shaped input before normalization
//   - MatchCandidate: A single field match produced per query
//   - RankedResult: A candidate enriched with display data and a rank
//   - Filters: Advisory per-document search filters
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
