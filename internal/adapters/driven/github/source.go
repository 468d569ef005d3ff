package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v80/github"

	"github.com/fennec-labs/gistfind-cli/internal/core/domain"
	"github.com/fennec-labs/gistfind-cli/internal/core/ports/driven"
	"github.com/fennec-labs/gistfind-cli/internal/logger"
)

// Source implements the GistSource port over the GitHub API.
type Source struct {
	client *Client

	// includeStarred pulls the starred collection alongside owned gists.
	includeStarred bool

	// hydrate fetches each gist individually to obtain full file
	// contents; the list endpoints truncate them.
	hydrate bool
}

var _ driven.GistSource = (*Source)(nil)

// NewSource creates a gist source. Starred gists are included and file
// contents hydrated by default.
func NewSource(client *Client) *Source {
	return &Source{
		client:         client,
		includeStarred: true,
		hydrate:        true,
	}
}

// WithStarred toggles inclusion of the starred collection.
func (s *Source) WithStarred(include bool) *Source {
	s.includeStarred = include
	return s
}

// WithHydration toggles the per-gist content fetch.
func (s *Source) WithHydration(hydrate bool) *Source {
	s.hydrate = hydrate
	return s
}

// ListGists fetches owned and starred gists, merges them with owned
// taking precedence, and converts each into a raw record. Total
// failure of either listing aborts the pass.
func (s *Source) ListGists(ctx context.Context) ([]domain.RawGist, error) {
	owned, err := s.client.ListOwnedGists(ctx)
	if err != nil {
		return nil, sourceErr("list owned gists", err)
	}

	var starred []*gh.Gist
	if s.includeStarred {
		starred, err = s.client.ListStarredGists(ctx)
		if err != nil {
			return nil, sourceErr("list starred gists", err)
		}
	}

	seen := make(map[string]struct{}, len(owned))
	out := make([]domain.RawGist, 0, len(owned)+len(starred))

	for _, g := range owned {
		seen[g.GetID()] = struct{}{}
		out = append(out, s.toRaw(ctx, g, false))
	}
	for _, g := range starred {
		// A starred own gist stays in the owned collection.
		if _, dup := seen[g.GetID()]; dup {
			continue
		}
		out = append(out, s.toRaw(ctx, g, true))
	}

	logger.Info("fetched %d gists (%d owned, %d starred)", len(out), len(owned), len(out)-len(owned))
	return out, nil
}

// toRaw converts one API gist, hydrating file contents when enabled.
// A failed hydration is soft: the truncated listing payload is used.
func (s *Source) toRaw(ctx context.Context, g *gh.Gist, starred bool) domain.RawGist {
	if s.hydrate && g.GetID() != "" {
		full, err := s.client.GetGist(ctx, g.GetID())
		if err != nil {
			logger.Warn("hydrate gist %s failed: %v", g.GetID(), err)
		} else {
			g = full
		}
	}
	return mapGist(g, starred)
}

// mapGist converts an API gist into a raw record, splitting the
// description into folder, title, and tags.
func mapGist(g *gh.Gist, starred bool) domain.RawGist {
	parsed := ParseDescription(g.GetDescription())

	files := make(map[string]domain.GistFile, len(g.Files))
	for name, f := range g.Files {
		files[string(name)] = domain.GistFile{
			Content:  f.GetContent(),
			Language: f.GetLanguage(),
		}
	}

	return domain.RawGist{
		ID:          g.GetID(),
		Name:        parsed.Title,
		Description: g.GetDescription(),
		Folder:      parsed.Folder,
		Public:      g.GetPublic(),
		Files:       files,
		Tags:        parsed.Tags,
		Starred:     starred,
	}
}

// sourceErr maps transport failures onto domain error sentinels so the
// core can distinguish retryable outages from credential problems.
func sourceErr(op string, err error) error {
	switch {
	case IsUnauthorized(err):
		return fmt.Errorf("%s: %w", op, domain.ErrAuthRequired)
	case IsRateLimited(err):
		return fmt.Errorf("%s: %w", op, domain.ErrRateLimited)
	default:
		return fmt.Errorf("%s (%v): %w", op, err, domain.ErrSourceUnavailable)
	}
}
