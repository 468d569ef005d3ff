package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fennec-labs/gistfind-cli/internal/adapters/driven/storage/memory"
	"github.com/fennec-labs/gistfind-cli/internal/core/domain"
)

// TestSettingsService_Defaults verifies an empty store yields the
// production defaults.
func TestSettingsService_Defaults(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore())

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, 300, settings.Search.DebounceMillis)
	assert.Equal(t, domain.DefaultMaxResults, settings.Search.MaxResults)
	assert.Equal(t, 300000, settings.Index.CacheTTLMillis)
	assert.True(t, settings.Index.IncludeStarred)
	assert.True(t, settings.Index.HydrateContent)
	assert.Empty(t, settings.GitHub.Token)
}

// TestSettingsService_StoredValuesOverrideDefaults verifies configured
// keys win.
func TestSettingsService_StoredValuesOverrideDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	require.NoError(t, store.Set("search.debounce_millis", 150))
	require.NoError(t, store.Set("search.max_results", 10))
	require.NoError(t, store.Set("index.include_starred", false))
	require.NoError(t, store.Set("github.token", "ghp_abc"))

	svc := NewSettingsService(store)
	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, 150, settings.Search.DebounceMillis)
	assert.Equal(t, 10, settings.Search.MaxResults)
	assert.False(t, settings.Index.IncludeStarred)
	assert.Equal(t, "ghp_abc", settings.GitHub.Token)
}

// TestSettingsService_SaveRoundTrip verifies Save writes everything Get
// reads back.
func TestSettingsService_SaveRoundTrip(t *testing.T) {
	svc := NewSettingsService(memory.NewConfigStore())

	in := domain.DefaultAppSettings()
	in.Search.MaxResults = 20
	in.GitHub.Token = "ghp_xyz"
	require.NoError(t, svc.Save(&in))

	out, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, 20, out.Search.MaxResults)
	assert.Equal(t, "ghp_xyz", out.GitHub.Token)
}

// TestSettingsService_SetToken verifies token storage and validation.
func TestSettingsService_SetToken(t *testing.T) {
	store := memory.NewConfigStore()
	svc := NewSettingsService(store)

	require.NoError(t, svc.SetToken("ghp_abc"))
	assert.Equal(t, "ghp_abc", store.GetString("github.token"))

	err := svc.SetToken("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestSettingsService_SearchOptions verifies option derivation.
func TestSettingsService_SearchOptions(t *testing.T) {
	store := memory.NewConfigStore()
	require.NoError(t, store.Set("search.max_results", 10))

	svc := NewSettingsService(store)
	opts := svc.SearchOptions()
	assert.Equal(t, 10, opts.MaxResults)
	assert.Equal(t, 10, opts.Limit())
}
