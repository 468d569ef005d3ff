package driving

import (
	"context"

	"github.com/fennec-labs/gistfind-cli/internal/core/domain"
)

// SearchService runs one full scan of the indexed document set.
type SearchService interface {
	// Search scans, deduplicates, ranks and caps results for the query.
	// An empty query returns the browse-all set; a non-empty query with
	// no matches returns the single no-results sentinel row.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.RankedResult, error)
}

// Indexer builds and caches the normalized document set.
type Indexer interface {
	// Rebuild forces a fresh indexing pass.
	Rebuild(ctx context.Context) error

	// Documents returns the current normalized document list, building
	// it first if the cache is empty or expired.
	Documents(ctx context.Context) ([]domain.Document, error)
}
