package domain

import (
	"fmt"
	"strings"
)

// FieldKind is the category of text a candidate matched against.
type FieldKind string

// Available field kinds.
const (
	// FieldName matched the document display name.
	FieldName FieldKind = "name"

	// FieldDescription matched the description text.
	FieldDescription FieldKind = "description"

	// FieldFilename matched a file's name.
	FieldFilename FieldKind = "filename"

	// FieldContent matched one line of a file's content.
	FieldContent FieldKind = "content"

	// FieldTag matched a tag.
	FieldTag FieldKind = "tag"
)

// Priority returns the ranking priority of the field kind.
// Higher sorts first when the exact-context tier ties.
func (k FieldKind) Priority() int {
	switch k {
	case FieldName:
		return 100
	case FieldTag:
		return 90
	case FieldDescription:
		return 80
	case FieldFilename:
		return 60
	case FieldContent:
		return 40
	default:
		return 0
	}
}

// TypeBonus returns the score contribution added to every candidate
// of this field kind on top of the matcher's raw score.
func (k FieldKind) TypeBonus() int {
	switch k {
	case FieldTag:
		return 35
	case FieldName:
		return 30
	case FieldFilename:
		return 25
	case FieldDescription:
		return 20
	case FieldContent:
		return 10
	default:
		return 0
	}
}

// MatchCandidate is one field match found while scanning a document.
// Candidates are ephemeral: produced per query, discarded after ranking.
type MatchCandidate struct {
	// DocumentID identifies the matched document.
	DocumentID string

	// FieldKind is the category of the matched text.
	FieldKind FieldKind

	// SubKey is the filename for filename/content matches and the tag
	// text for tag matches. Empty otherwise.
	SubKey string

	// LineNumber is the 1-based matched line for content matches,
	// zero otherwise.
	LineNumber int

	// Score is the combined score: matcher raw score plus type bonus
	// plus the stacking exact/prefix/contains bonuses.
	Score int

	// Preview is the display text for the match.
	Preview string

	// Context is the surrounding text used for exact-match detection
	// during ranking.
	Context string
}

// Key returns the deduplication key. At most one candidate per key
// survives deduplication.
func (c *MatchCandidate) Key() string {
	return fmt.Sprintf("%s\x00%s\x00%s\x00%d", c.DocumentID, c.FieldKind, c.SubKey, c.LineNumber)
}

// Filters restricts which documents are scanned. All fields are
// optional and combine with logical AND. Filters are advisory:
// malformed values match nothing rather than raising an error.
type Filters struct {
	// Visibility keeps documents with this visibility ("public" or
	// "private"). An unrecognised non-empty token matches nothing.
	Visibility string

	// Folder keeps documents with a folder-path segment containing
	// this substring, case-insensitively.
	Folder string

	// Language keeps documents with at least one file whose declared
	// language contains this substring, case-insensitively.
	Language string

	// Tags keeps documents carrying ALL listed tags (case-insensitive
	// exact match per tag, never fuzzy).
	Tags []string
}

// Empty returns true when no filter is active.
func (f Filters) Empty() bool {
	return f.Visibility == "" && f.Folder == "" && f.Language == "" && len(f.Tags) == 0
}

// Matches reports whether the document passes every active filter.
func (f Filters) Matches(doc *Document) bool {
	if f.Visibility != "" {
		v := Visibility(strings.ToLower(strings.TrimSpace(f.Visibility)))
		if !v.IsValid() || doc.Visibility != v {
			return false
		}
	}

	if f.Folder != "" {
		want := strings.ToLower(f.Folder)
		found := false
		for _, seg := range doc.FolderPath {
			if strings.Contains(strings.ToLower(seg), want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.Language != "" {
		want := strings.ToLower(f.Language)
		found := false
		for _, file := range doc.Files {
			if file.Language != "" && strings.Contains(strings.ToLower(file.Language), want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	for _, tag := range f.Tags {
		if !doc.HasTag(tag) {
			return false
		}
	}

	return true
}

// NoResultsID is the identifier of the no-results sentinel result.
// A search that finds nothing for a non-empty query still publishes
// one renderable row carrying this identifier.
const NoResultsID = "no-results"

// RankedResult is a match candidate enriched with the document's
// denormalized display data and a final rank position. Created fresh
// per query and never mutated after creation.
type RankedResult struct {
	MatchCandidate

	// Rank is the zero-based position in the published list.
	Rank int

	// Name is the document display name.
	Name string

	// FolderPath is the document folder segments.
	FolderPath []string

	// Visibility is the document visibility.
	Visibility Visibility

	// Tags is the document tag set.
	Tags []string

	// Origin routes the result back to its source collection.
	Origin Origin
}

// IsSentinel returns true for the no-results sentinel row.
func (r *RankedResult) IsSentinel() bool {
	return r.DocumentID == NoResultsID
}

// NoResultsResult builds the sentinel row published when a non-empty
// query matches nothing.
func NoResultsResult(query string) RankedResult {
	return RankedResult{
		MatchCandidate: MatchCandidate{
			DocumentID: NoResultsID,
			FieldKind:  FieldName,
			Preview:    fmt.Sprintf("no results found for %q", query),
		},
	}
}

// SearchOptions configures the search pipeline.
type SearchOptions struct {
	// MaxResults caps the published list. Zero means the default (50).
	MaxResults int

	// Filters restricts the scanned document set.
	Filters Filters
}

// DefaultMaxResults is the display cap applied when SearchOptions
// does not override it.
const DefaultMaxResults = 50

// Limit resolves the effective result cap.
func (o SearchOptions) Limit() int {
	if o.MaxResults > 0 {
		return o.MaxResults
	}
	return DefaultMaxResults
}
