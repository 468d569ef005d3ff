package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fennec-labs/gistfind-cli/internal/core/domain"
	"github.com/fennec-labs/gistfind-cli/internal/core/ports/driven"
	"github.com/fennec-labs/gistfind-cli/internal/core/ports/driving"
	"github.com/fennec-labs/gistfind-cli/internal/logger"
)

// DefaultCacheTTL is how long a built index is served before the next
// Documents call triggers a rebuild.
const DefaultCacheTTL = 5 * time.Minute

// IndexService builds the normalized document set from a gist source
// and caches it with a TTL. All methods are safe for concurrent use.
type IndexService struct {
	source driven.GistSource
	tags   driven.TagLookup
	ttl    time.Duration
	now    func() time.Time

	mu      sync.Mutex
	docs    []domain.Document
	builtAt time.Time
}

var _ driving.Indexer = (*IndexService)(nil)

// NewIndexService creates an index service. The tag lookup is optional;
// when nil, supplier-embedded tags are used instead. A non-positive ttl
// falls back to DefaultCacheTTL.
func NewIndexService(source driven.GistSource, tags driven.TagLookup, ttl time.Duration) *IndexService {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &IndexService{
		source: source,
		tags:   tags,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Rebuild forces a fresh indexing pass, replacing the cache.
func (s *IndexService) Rebuild(ctx context.Context) error {
	docs, err := s.build(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.docs = docs
	s.builtAt = s.now()
	s.mu.Unlock()
	return nil
}

// Documents returns the cached document list, rebuilding first when the
// cache is empty or older than the TTL. On rebuild failure with a
// previously built cache, the stale list is served and the error is
// logged, so transient supplier outages do not blank the result view.
func (s *IndexService) Documents(ctx context.Context) ([]domain.Document, error) {
	s.mu.Lock()
	fresh := s.docs != nil && s.now().Sub(s.builtAt) < s.ttl
	cached := s.docs
	s.mu.Unlock()

	if fresh {
		return cached, nil
	}

	if err := s.Rebuild(ctx); err != nil {
		if cached != nil {
			logger.Warn("index rebuild failed, serving stale cache: %v", err)
			return cached, nil
		}
		return nil, err
	}

	s.mu.Lock()
	docs := s.docs
	s.mu.Unlock()
	return docs, nil
}

// build fetches every gist in scope and normalizes it into a Document.
func (s *IndexService) build(ctx context.Context) ([]domain.Document, error) {
	logger.Section("Index Build")

	raws, err := s.source.ListGists(ctx)
	if err != nil {
		return nil, fmt.Errorf("build index: %w", err)
	}

	docs := make([]domain.Document, 0, len(raws))
	for i := range raws {
		docs = append(docs, s.normalize(ctx, &raws[i]))
	}

	logger.Info("indexed %d documents", len(docs))
	return docs, nil
}

// normalize converts one raw gist into a Document, filling missing
// pieces: an ID when the supplier gave none, a display name from the
// first filename, and tags from the lookup or the embedded list.
func (s *IndexService) normalize(ctx context.Context, raw *domain.RawGist) domain.Document {
	id := raw.ID
	if id == "" {
		id = uuid.New().String()
	}

	name := raw.Name
	if name == "" {
		if first := firstFilename(raw.Files); first != "" {
			name = first
		} else {
			name = "untitled"
		}
	}

	visibility := domain.VisibilityPrivate
	if raw.Public {
		visibility = domain.VisibilityPublic
	}

	origin := domain.OriginOwned
	if raw.Starred {
		origin = domain.OriginStarred
	}

	return domain.Document{
		ID:          id,
		Name:        name,
		Description: raw.Description,
		FolderPath:  domain.ParseFolderPath(raw.Folder),
		Visibility:  visibility,
		Files:       raw.Files,
		Tags:        s.resolveTags(ctx, id, raw.Tags),
		Origin:      origin,
	}
}

// resolveTags prefers the tag lookup when it knows the document. A
// lookup failure for one document is soft: it logs and falls back to
// the embedded list. A lookup with no tags for the document is not an
// override either; the supplier-embedded tags remain, so a curated
// store layered over description-parsed tags only replaces what it
// actually holds.
func (s *IndexService) resolveTags(ctx context.Context, id string, embedded []string) []string {
	if s.tags == nil {
		return domain.NormalizeTags(embedded)
	}

	tags, err := s.tags.TagsFor(ctx, id)
	if err != nil {
		logger.Warn("tag lookup for %s failed: %v", id, err)
		return domain.NormalizeTags(embedded)
	}
	if len(tags) == 0 {
		return domain.NormalizeTags(embedded)
	}
	return domain.NormalizeTags(tags)
}

func firstFilename(files map[string]domain.GistFile) string {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	if len(names) == 0 {
		return ""
	}
	sort.Strings(names)
	return names[0]
}
