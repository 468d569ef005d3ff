package domain

// RawGist represents a gist as fetched by a supplier, before
// normalization into a Document.
type RawGist struct {
	// ID is the supplier-assigned identifier. May be empty; the
	// indexer assigns one in that case.
	ID string

	// Name is the display name (typically the first filename).
	Name string

	// Description is the raw description text, which may embed a
	// folder prefix and tag suffixes.
	Description string

	// Folder is the raw hierarchical folder label ("a/b/c").
	Folder string

	// Public is true for publicly listed gists.
	Public bool

	// Files maps filename to raw content and language.
	Files map[string]GistFile

	// Tags holds supplier-embedded tags, if any. A configured
	// TagLookup takes precedence over this list.
	Tags []string

	// Starred is true when the gist came from the starred collection.
	Starred bool
}
