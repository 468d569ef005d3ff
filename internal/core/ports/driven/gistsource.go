package driven

import (
	"context"

	"github.com/fennec-labs/gistfind-cli/internal/core/domain"
)

// GistSource supplies raw gists for indexing.
// The core performs no network calls itself; a source adapter fetches
// the full list once per indexing pass.
type GistSource interface {
	// ListGists returns every gist in scope (owned and starred).
	// Total unavailability must surface as an error wrapping
	// domain.ErrSourceUnavailable so the caller can retry.
	ListGists(ctx context.Context) ([]domain.RawGist, error)
}

// TagLookup resolves the tag set for a document.
// Failure for a single document is a soft error: the indexer logs it
// and continues with an empty tag set.
type TagLookup interface {
	// TagsFor returns the tags for the given document ID.
	TagsFor(ctx context.Context, documentID string) ([]string, error)
}
