// Package search implements the interactive finder view.
package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fennec-labs/gistfind-cli/internal/adapters/driving/tui/components/input"
	"github.com/fennec-labs/gistfind-cli/internal/adapters/driving/tui/components/list"
	"github.com/fennec-labs/gistfind-cli/internal/adapters/driving/tui/keymap"
	"github.com/fennec-labs/gistfind-cli/internal/adapters/driving/tui/messages"
	"github.com/fennec-labs/gistfind-cli/internal/adapters/driving/tui/styles"
	"github.com/fennec-labs/gistfind-cli/internal/core/ports/driving"
)

// chromeHeight is the vertical space taken by the header, the input
// field, and the status bar.
const chromeHeight = 7

// View is the single finder view: a query input above a ranked result
// list, wired to a debounced query session.
type View struct {
	session driving.QuerySession
	input   *input.SearchInput
	list    *list.ResultList
	keys    keymap.KeyMap
	styles  *styles.Styles

	width   int
	height  int
	lastErr error
}

// NewView creates the finder view around a query session.
func NewView(session driving.QuerySession, s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		session: session,
		input:   input.NewSearchInput(s),
		list:    list.NewResultList(s),
		keys:    keymap.DefaultKeyMap(),
		styles:  s,
	}
}

// Init returns the input's blink command.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles key presses, window sizing, and published results.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.input.SetWidth(msg.Width)
		v.list.SetSize(msg.Width, msg.Height-chromeHeight)
		return v, nil

	case messages.ResultsPublished:
		v.lastErr = nil
		v.list.SetResults(msg.Results)
		return v, nil

	case messages.ErrorOccurred:
		v.lastErr = msg.Err
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Up):
			v.list.CursorUp()
			return v, nil

		case key.Matches(msg, v.keys.Down):
			v.list.CursorDown()
			return v, nil

		case key.Matches(msg, v.keys.Clear):
			v.input.Reset()
			return v, v.submitQuery()

		case key.Matches(msg, v.keys.Refresh):
			return v, v.refresh()
		}
	}

	before := v.input.Value()
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)

	if v.input.Value() != before {
		return v, tea.Batch(cmd, v.submitQuery())
	}
	return v, cmd
}

// submitQuery feeds the current input text into the session. The
// session debounces; results arrive later as a ResultsPublished message.
func (v *View) submitQuery() tea.Cmd {
	text := v.input.Value()
	return func() tea.Msg {
		if err := v.session.SetQuery(text); err != nil {
			return messages.ErrorOccurred{Err: err}
		}
		return nil
	}
}

// refresh re-runs the current query immediately.
func (v *View) refresh() tea.Cmd {
	return func() tea.Msg {
		if err := v.session.Refresh(context.Background()); err != nil {
			return messages.ErrorOccurred{Err: err}
		}
		return nil
	}
}

// View renders the finder.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("gistfind"))
	b.WriteString("\n\n")
	b.WriteString(v.input.View())
	b.WriteString("\n\n")
	b.WriteString(v.list.View())
	b.WriteString("\n\n")
	b.WriteString(v.statusBar())

	return b.String()
}

func (v *View) statusBar() string {
	if v.lastErr != nil {
		return v.styles.Error.Render("error: " + v.lastErr.Error())
	}

	var status string
	switch v.session.State() {
	case driving.StateDebouncing:
		status = "typing..."
	case driving.StateScanning:
		status = "searching..."
	default:
		status = fmt.Sprintf("%d results", v.resultCount())
	}

	help := "↑/↓ navigate · ctrl+u clear · ctrl+r refresh · esc quit"
	return v.styles.StatusBar.Render(status + "  " + help)
}

// resultCount counts real rows, excluding the no-results sentinel.
func (v *View) resultCount() int {
	results := v.list.Results()
	n := 0
	for i := range results {
		if !results[i].IsSentinel() {
			n++
		}
	}
	return n
}

// List exposes the result list for selection handling.
func (v *View) List() *list.ResultList {
	return v.list
}

// Query returns the current input text.
func (v *View) Query() string {
	return v.input.Value()
}
