package services

import (
	"fmt"

	"github.com/fennec-labs/gistfind-cli/internal/core/domain"
	"github.com/fennec-labs/gistfind-cli/internal/core/ports/driven"
	"github.com/fennec-labs/gistfind-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyDebounceMillis = "search.debounce_millis"
	keyMaxResults     = "search.max_results"
	keyCacheTTLMillis = "index.cache_ttl_millis"
	keyIncludeStarred = "index.include_starred"
	keyHydrateContent = "index.hydrate_content"
	keyGitHubToken    = "github.token"
)

// SettingsService manages application settings on top of a config store.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings with defaults applied.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Search: domain.SearchBehaviour{
			DebounceMillis: s.getInt(keyDebounceMillis, defaults.Search.DebounceMillis),
			MaxResults:     s.getInt(keyMaxResults, defaults.Search.MaxResults),
		},
		Index: domain.IndexBehaviour{
			CacheTTLMillis: s.getInt(keyCacheTTLMillis, defaults.Index.CacheTTLMillis),
			IncludeStarred: s.getBool(keyIncludeStarred, defaults.Index.IncludeStarred),
			HydrateContent: s.getBool(keyHydrateContent, defaults.Index.HydrateContent),
		},
		GitHub: domain.GitHubSettings{
			Token: s.configStore.GetString(keyGitHubToken),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyDebounceMillis, settings.Search.DebounceMillis); err != nil {
		return fmt.Errorf("save debounce: %w", err)
	}
	if err := s.configStore.Set(keyMaxResults, settings.Search.MaxResults); err != nil {
		return fmt.Errorf("save max results: %w", err)
	}
	if err := s.configStore.Set(keyCacheTTLMillis, settings.Index.CacheTTLMillis); err != nil {
		return fmt.Errorf("save cache ttl: %w", err)
	}
	if err := s.configStore.Set(keyIncludeStarred, settings.Index.IncludeStarred); err != nil {
		return fmt.Errorf("save include starred: %w", err)
	}
	if err := s.configStore.Set(keyHydrateContent, settings.Index.HydrateContent); err != nil {
		return fmt.Errorf("save hydrate content: %w", err)
	}
	if settings.GitHub.Token != "" {
		if err := s.configStore.Set(keyGitHubToken, settings.GitHub.Token); err != nil {
			return fmt.Errorf("save github token: %w", err)
		}
	}
	return nil
}

// SetToken stores the GitHub personal access token.
func (s *SettingsService) SetToken(token string) error {
	if token == "" {
		return fmt.Errorf("set token: %w", domain.ErrInvalidInput)
	}
	if err := s.configStore.Set(keyGitHubToken, token); err != nil {
		return fmt.Errorf("save github token: %w", err)
	}
	return nil
}

// SearchOptions derives baseline search options from settings.
func (s *SettingsService) SearchOptions() domain.SearchOptions {
	settings, err := s.Get()
	if err != nil {
		return domain.SearchOptions{}
	}
	return domain.SearchOptions{MaxResults: settings.Search.MaxResults}
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
