package domain

import "strings"

// Visibility marks a document as publicly listed or private.
type Visibility string

// Available visibilities.
const (
	// VisibilityPublic is a publicly listed gist.
	VisibilityPublic Visibility = "public"

	// VisibilityPrivate is a secret gist.
	VisibilityPrivate Visibility = "private"
)

// IsValid returns true if the visibility token is recognised.
func (v Visibility) IsValid() bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}

// String returns the string representation.
func (v Visibility) String() string {
	return string(v)
}

// Origin identifies which source collection a document came from.
// It is used only for result routing, never for scoring.
type Origin string

// Available origins.
const (
	// OriginOwned is a gist owned by the authenticated user.
	OriginOwned Origin = "owned"

	// OriginStarred is a gist the user has starred.
	OriginStarred Origin = "starred"
)

// GistFile is one named file within a document.
type GistFile struct {
	// Content is the full file text. May be large, may span many lines.
	Content string

	// Language is the declared language label (e.g. "Go", "Markdown").
	// Empty when the supplier does not report one.
	Language string
}

// Document is a normalized gist record, immutable once indexed
// until the next rebuild.
//
// Invariants: Files keys are unique per document; Tags contains no
// duplicate or empty strings and is lowercase; FolderPath segments
// are non-empty, trimmed strings.
type Document struct {
	// ID is the opaque unique identifier.
	ID string

	// Name is the display name.
	Name string

	// Description is free-form text, may be empty.
	Description string

	// FolderPath is the ordered folder label segments. Empty means root.
	FolderPath []string

	// Visibility is public or private.
	Visibility Visibility

	// Files maps filename to file content and language.
	Files map[string]GistFile

	// Tags is the normalized lowercase tag set.
	Tags []string

	// Origin is the source collection the document came from.
	Origin Origin
}

// HasTag reports whether the document carries the given tag,
// compared case-insensitively.
func (d *Document) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Folder returns the folder path joined with "/", empty for root.
func (d *Document) Folder() string {
	return strings.Join(d.FolderPath, "/")
}

// NormalizeTags lowercases, trims, and deduplicates a tag list,
// dropping empty entries. Order of first occurrence is preserved.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// ParseFolderPath splits a folder label like "linux/networking" into
// trimmed, non-empty segments. Empty or blank input yields nil (root).
func ParseFolderPath(label string) []string {
	parts := strings.Split(label, "/")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
