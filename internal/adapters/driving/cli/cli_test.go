package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/fennec-labs/gistfind-cli/internal/core/domain"
	"github.com/fennec-labs/gistfind-cli/internal/core/ports/driving"
)

// --- Mock implementations ---

type mockSearchService struct {
	results   []domain.RankedResult
	err       error
	lastQuery string
	lastOpts  domain.SearchOptions
}

func (m *mockSearchService) Search(_ context.Context, query string, opts domain.SearchOptions) ([]domain.RankedResult, error) {
	m.lastQuery = query
	m.lastOpts = opts
	return m.results, m.err
}

var _ driving.SearchService = (*mockSearchService)(nil)

type mockSettingsService struct {
	settings domain.AppSettings
	token    string
	tokenErr error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Save(_ *domain.AppSettings) error { return nil }

func (m *mockSettingsService) SetToken(token string) error {
	if m.tokenErr != nil {
		return m.tokenErr
	}
	m.token = token
	m.settings.GitHub.Token = token
	return nil
}

func (m *mockSettingsService) SearchOptions() domain.SearchOptions {
	return domain.SearchOptions{MaxResults: m.settings.Search.MaxResults}
}

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

var _ driving.SettingsService = (*mockSettingsService)(nil)

type mockIndexer struct {
	docs       []domain.Document
	rebuildErr error
	docsErr    error
	rebuilds   int
}

func (m *mockIndexer) Rebuild(_ context.Context) error {
	m.rebuilds++
	return m.rebuildErr
}

func (m *mockIndexer) Documents(_ context.Context) ([]domain.Document, error) {
	return m.docs, m.docsErr
}

var _ driving.Indexer = (*mockIndexer)(nil)

// executeCommand runs the root command with the given args and
// captures its output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetSearchFlags puts the search flags back to their defaults
// between tests; cobra keeps flag state across Execute calls.
func resetSearchFlags() {
	searchLimit = 0
	searchJSON = false
	searchVisibility = ""
	searchFolder = ""
	searchLanguage = ""
	searchTags = nil
	authLoginToken = ""
}
