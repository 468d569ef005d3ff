package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/fennec-labs/gistfind-cli/internal/adapters/driving/tui"
	"github.com/fennec-labs/gistfind-cli/internal/core/domain"
	"github.com/fennec-labs/gistfind-cli/internal/core/services"
	"github.com/fennec-labs/gistfind-cli/internal/logger"
)

// resultBuffer sizes the channel between the session's publish callback
// and the TUI event loop. Publishes replace each other logically, so a
// small buffer only needs to absorb a burst.
const resultBuffer = 8

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive finder (same as running with no arguments)",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	// Terminal output and log output cannot share a screen.
	logger.SetVerbose(false)

	if searchService == nil || settingsService == nil {
		return errors.New("services not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if !settings.GitHub.IsConfigured() {
		return errors.New("no GitHub token configured; run 'gistfind auth login' first")
	}

	results := make(chan []domain.RankedResult, resultBuffer)

	session := services.NewSession(searchService, services.SessionConfig{
		Debounce: settings.Search.Debounce(),
		Options:  settingsService.SearchOptions(),
		OnPublish: func(r []domain.RankedResult) {
			select {
			case results <- r:
			default:
				// Drop when the loop is behind; the next publish
				// supersedes this one anyway.
			}
		},
	})
	defer session.Close()

	app, err := tui.NewApp(tui.Ports{
		Session: session,
		Results: results,
	})
	if err != nil {
		return fmt.Errorf("initialise finder: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run finder: %w", err)
	}
	return nil
}
