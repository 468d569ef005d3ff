// Package tui implements the interactive terminal finder.
//
// The application follows the Elm architecture via Bubbletea: a single
// model, messages for every event, and an explicit update loop. The
// query session runs its own debounce timers; published result lists
// cross into the event loop through a channel that a long-running
// command listens on.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fennec-labs/gistfind-cli/internal/adapters/driving/tui/messages"
	"github.com/fennec-labs/gistfind-cli/internal/adapters/driving/tui/styles"
	"github.com/fennec-labs/gistfind-cli/internal/adapters/driving/tui/views/search"
)

// App is the root Bubbletea model.
type App struct {
	ports  Ports
	view   *search.View
	styles *styles.Styles

	width  int
	height int
}

var _ tea.Model = (*App)(nil)

// NewApp creates the application model. Returns an error when a
// required port is missing.
func NewApp(ports Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("invalid ports: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:  ports,
		view:   search.NewView(ports.Session, s),
		styles: s,
	}, nil
}

// Init starts the session and begins listening for published results.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.startSession(),
		a.waitForResults(),
		a.view.Init(),
	)
}

// startSession runs the initial empty-query scan so the finder opens
// on the browse-all list.
func (a *App) startSession() tea.Cmd {
	return func() tea.Msg {
		if err := a.ports.Session.Start(context.Background()); err != nil {
			return messages.ErrorOccurred{Err: err}
		}
		return messages.ResultsPublished{Results: a.ports.Session.Results()}
	}
}

// waitForResults blocks on the results channel and converts each
// published list into a message. Re-armed after every receipt.
func (a *App) waitForResults() tea.Cmd {
	return func() tea.Msg {
		results, ok := <-a.ports.Results
		if !ok {
			return nil
		}
		return messages.ResultsPublished{Results: results}
	}
}

// Update routes messages to the finder view.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case messages.ResultsPublished:
		var cmd tea.Cmd
		a.view, cmd = a.view.Update(msg)
		return a, tea.Batch(cmd, a.waitForResults())

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "esc" {
			a.ports.Session.Close()
			return a, tea.Quit
		}
	}

	var cmd tea.Cmd
	a.view, cmd = a.view.Update(msg)
	return a, cmd
}

// View renders the finder view.
func (a *App) View() string {
	return a.view.View()
}
