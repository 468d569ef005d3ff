package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/fennec-labs/gistfind-cli/internal/core/domain"
	"github.com/fennec-labs/gistfind-cli/internal/core/ports/driving"
	"github.com/fennec-labs/gistfind-cli/internal/logger"
)

// SearchService runs the full pipeline for one query: filter the
// document set, scan every field, deduplicate, rank, cap, and hydrate
// display data. It is stateless between calls.
type SearchService struct {
	indexer driving.Indexer
}

var _ driving.SearchService = (*SearchService)(nil)

// NewSearchService creates a search service over the given indexer.
func NewSearchService(indexer driving.Indexer) *SearchService {
	return &SearchService{indexer: indexer}
}

// Search executes one scan. An empty (or blank) query returns the
// browse-all set: one zero-score name row per in-scope document. A
// non-empty query that matches nothing returns the single no-results
// sentinel row, never an empty list.
func (s *SearchService) Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.RankedResult, error) {
	logger.Section("Search Execution")
	logger.Debug("query %q, limit %d", query, opts.Limit())

	docs, err := s.indexer.Documents(ctx)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	scoped := make([]*domain.Document, 0, len(docs))
	for i := range docs {
		if opts.Filters.Matches(&docs[i]) {
			scoped = append(scoped, &docs[i])
		}
	}
	logger.Debug("%d of %d documents in scope", len(scoped), len(docs))

	query = strings.TrimSpace(query)

	var candidates []domain.MatchCandidate
	if query == "" {
		for _, doc := range scoped {
			candidates = append(candidates, browseCandidate(doc))
		}
	} else {
		for _, doc := range scoped {
			candidates = append(candidates, scanDocument(doc, query)...)
		}
	}

	candidates = rank(dedupe(candidates), query)
	if limit := opts.Limit(); len(candidates) > limit {
		candidates = candidates[:limit]
	}

	if len(candidates) == 0 && query != "" {
		logger.Info("no matches for %q", query)
		return []domain.RankedResult{domain.NoResultsResult(query)}, nil
	}

	byID := make(map[string]*domain.Document, len(scoped))
	for _, doc := range scoped {
		byID[doc.ID] = doc
	}

	results := make([]domain.RankedResult, 0, len(candidates))
	for i, c := range candidates {
		r := domain.RankedResult{MatchCandidate: c, Rank: i}
		if doc, ok := byID[c.DocumentID]; ok {
			r.Name = doc.Name
			r.FolderPath = doc.FolderPath
			r.Visibility = doc.Visibility
			r.Tags = doc.Tags
			r.Origin = doc.Origin
		}
		results = append(results, r)
	}

	logger.Info("published %d results", len(results))
	return results, nil
}
