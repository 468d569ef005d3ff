package domain

import "time"

// SearchBehaviour holds the user-tunable search knobs.
type SearchBehaviour struct {
	// DebounceMillis is the pause after the last keystroke before a
	// scan runs.
	DebounceMillis int

	// MaxResults caps the published result list.
	MaxResults int
}

// Debounce returns the debounce as a duration.
func (s SearchBehaviour) Debounce() time.Duration {
	return time.Duration(s.DebounceMillis) * time.Millisecond
}

// IndexBehaviour holds index construction configuration.
type IndexBehaviour struct {
	// CacheTTLMillis is how long a built index is served before the
	// next query triggers a rebuild.
	CacheTTLMillis int

	// IncludeStarred pulls the starred collection alongside owned gists.
	IncludeStarred bool

	// HydrateContent fetches full file contents per gist. Disabling it
	// speeds indexing up but restricts content search to the truncated
	// listing payloads.
	HydrateContent bool
}

// CacheTTL returns the cache TTL as a duration.
func (i IndexBehaviour) CacheTTL() time.Duration {
	return time.Duration(i.CacheTTLMillis) * time.Millisecond
}

// GitHubSettings holds supplier credentials.
type GitHubSettings struct {
	// Token is the personal access token used for the Gists API.
	Token string
}

// IsConfigured returns true when a token is present.
func (g GitHubSettings) IsConfigured() bool {
	return g.Token != ""
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Search holds search behaviour settings.
	Search SearchBehaviour

	// Index holds index construction settings.
	Index IndexBehaviour

	// GitHub holds supplier settings.
	GitHub GitHubSettings
}

// DefaultAppSettings returns settings with production defaults.
// The GitHub token is left empty; users set it via "auth login".
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Search: SearchBehaviour{
			DebounceMillis: 300,
			MaxResults:     DefaultMaxResults,
		},
		Index: IndexBehaviour{
			CacheTTLMillis: 300000,
			IncludeStarred: true,
			HydrateContent: true,
		},
		GitHub: GitHubSettings{},
	}
}
