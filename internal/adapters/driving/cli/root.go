// Package cli implements the cobra command tree: the interactive TUI
// entry point plus one-shot search, auth, index, and version commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fennec-labs/gistfind-cli/internal/core/ports/driven"
	"github.com/fennec-labs/gistfind-cli/internal/core/ports/driving"
	"github.com/fennec-labs/gistfind-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services wired in by main before Execute runs. Tests inject mocks
// through SetServices.
var (
	searchService   driving.SearchService
	settingsService driving.SettingsService
	indexer         driving.Indexer
	configStore     driven.ConfigStore
)

// Services bundles everything the command tree needs.
type Services struct {
	Search   driving.SearchService
	Settings driving.SettingsService
	Indexer  driving.Indexer
	Config   driven.ConfigStore
}

// SetServices installs the service implementations used by commands.
func SetServices(s *Services) {
	if s == nil {
		return
	}
	searchService = s.Search
	settingsService = s.Settings
	indexer = s.Indexer
	configStore = s.Config
}

// Root flags.
var (
	flagVerbose   bool
	flagConfigDir string
)

var rootCmd = &cobra.Command{
	Use:   "gistfind",
	Short: "Fuzzy search across your GitHub gists",
	Long: `gistfind indexes your owned and starred GitHub gists and lets you
search them by name, description, filename, file content, and tags.

Run without arguments to open the interactive finder; use the search
subcommand for one-shot queries.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "config directory (default ~/.gistfind)")
}

// Execute runs the command tree.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("gistfind: %w", err)
	}
	return nil
}
