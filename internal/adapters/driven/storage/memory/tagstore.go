package memory

import (
	"context"
	"sync"

	"github.com/fennec-labs/gistfind-cli/internal/core/ports/driven"
)

// Ensure TagStore implements the interface.
var _ driven.TagLookup = (*TagStore)(nil)

// TagStore is an in-memory implementation of driven.TagLookup. It lets
// users curate tag sets per document on top of whatever the supplier
// embeds in descriptions.
type TagStore struct {
	mu   sync.RWMutex
	tags map[string][]string
}

// NewTagStore creates an empty tag store.
func NewTagStore() *TagStore {
	return &TagStore{
		tags: make(map[string][]string),
	}
}

// TagsFor returns the tags recorded for the given document ID.
// Unknown documents yield an empty set, not an error.
func (s *TagStore) TagsFor(_ context.Context, documentID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tags := s.tags[documentID]
	out := make([]string, len(tags))
	copy(out, tags)
	return out, nil
}

// SetTags replaces the tag set for a document.
func (s *TagStore) SetTags(documentID string, tags []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]string, len(tags))
	copy(stored, tags)
	s.tags[documentID] = stored
}

// Delete removes a document's tags.
func (s *TagStore) Delete(documentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tags, documentID)
}
