// gistfind is a fuzzy finder for GitHub gists. It indexes owned and
// starred gists and searches them by name, description, filename, file
// content, and tags, either interactively or via one-shot commands.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fennec-labs/gistfind-cli/internal/adapters/driven/config/file"
	"github.com/fennec-labs/gistfind-cli/internal/adapters/driven/github"
	"github.com/fennec-labs/gistfind-cli/internal/adapters/driven/storage/memory"
	"github.com/fennec-labs/gistfind-cli/internal/adapters/driving/cli"
	"github.com/fennec-labs/gistfind-cli/internal/core/services"
	"github.com/fennec-labs/gistfind-cli/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	configStore, err := file.NewConfigStore(configDirFromArgs(os.Args[1:]))
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	// Config edits made while the finder is open take effect on the
	// next index rebuild.
	if err := configStore.Watch(ctx, func() {
		logger.Info("config reloaded")
	}); err != nil {
		logger.Warn("config watch unavailable: %v", err)
	}

	client := github.NewClient(ctx, settings.GitHub.Token)
	source := github.NewSource(client).
		WithStarred(settings.Index.IncludeStarred).
		WithHydration(settings.Index.HydrateContent)

	tagStore := memory.NewTagStore()

	indexService := services.NewIndexService(source, tagStore, settings.Index.CacheTTL())
	searchService := services.NewSearchService(indexService)

	cli.SetServices(&cli.Services{
		Search:   searchService,
		Settings: settingsService,
		Indexer:  indexService,
		Config:   configStore,
	})

	return cli.Execute()
}

// configDirFromArgs pre-scans for the --config flag. Services are wired
// before cobra parses flags, so the config location has to be resolved
// up front.
func configDirFromArgs(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "--config" && i+1 < len(args):
			return args[i+1]
		case strings.HasPrefix(arg, "--config="):
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	return ""
}
