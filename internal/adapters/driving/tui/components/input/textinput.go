// Package input provides the query input component.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fennec-labs/gistfind-cli/internal/adapters/driving/tui/styles"
)

// SearchInput wraps a textinput for typing search queries.
type SearchInput struct {
	input  textinput.Model
	styles *styles.Styles
	width  int
}

// NewSearchInput creates a search input with sensible defaults.
func NewSearchInput(s *styles.Styles) *SearchInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Search your gists..."
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.Focus()

	return &SearchInput{
		input:  ti,
		styles: s,
	}
}

// Init returns the cursor blink command.
func (i *SearchInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards messages to the underlying textinput.
func (i *SearchInput) Update(msg tea.Msg) (*SearchInput, tea.Cmd) {
	var cmd tea.Cmd
	i.input, cmd = i.input.Update(msg)
	return i, cmd
}

// View renders the input inside its bordered field.
func (i *SearchInput) View() string {
	field := i.styles.InputField
	if i.width > 0 {
		field = field.Width(i.width - field.GetHorizontalFrameSize())
	}
	return field.Render(i.input.View())
}

// Value returns the current query text.
func (i *SearchInput) Value() string {
	return i.input.Value()
}

// SetValue replaces the query text.
func (i *SearchInput) SetValue(v string) {
	i.input.SetValue(v)
}

// Reset clears the query text.
func (i *SearchInput) Reset() {
	i.input.Reset()
}

// SetWidth sets the rendered width of the input field.
func (i *SearchInput) SetWidth(w int) {
	i.width = w
	inner := w - i.styles.InputField.GetHorizontalFrameSize() - len(i.input.Prompt)
	if inner > 0 {
		i.input.Width = inner
	}
}

// Focused reports whether the input has focus.
func (i *SearchInput) Focused() bool {
	return i.input.Focused()
}

// Focus gives the input focus and returns the blink command.
func (i *SearchInput) Focus() tea.Cmd {
	return i.input.Focus()
}

// Blur removes focus from the input.
func (i *SearchInput) Blur() {
	i.input.Blur()
}
