package driving

import "github.com/fennec-labs/gistfind-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings, applying defaults
	// for anything unset.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetToken stores the GitHub personal access token.
	SetToken(token string) error

	// SearchOptions derives baseline search options from settings.
	SearchOptions() domain.SearchOptions

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
