// Package list provides the scrollable result list component.
package list

import (
	"fmt"
	"strings"

	"github.com/fennec-labs/gistfind-cli/internal/adapters/driving/tui/styles"
	"github.com/fennec-labs/gistfind-cli/internal/core/domain"
)

// ResultList renders ranked results with cursor-based selection and
// viewport scrolling.
type ResultList struct {
	results []domain.RankedResult
	cursor  int
	offset  int
	height  int
	width   int
	styles  *styles.Styles
}

// NewResultList creates an empty result list.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		height: 10,
		styles: s,
	}
}

// SetResults replaces the displayed results and resets the cursor.
func (l *ResultList) SetResults(results []domain.RankedResult) {
	l.results = results
	l.cursor = 0
	l.offset = 0
}

// Results returns the currently displayed results.
func (l *ResultList) Results() []domain.RankedResult {
	return l.results
}

// Selected returns the result under the cursor, or nil when the list
// is empty or only holds the sentinel row.
func (l *ResultList) Selected() *domain.RankedResult {
	if len(l.results) == 0 || l.cursor >= len(l.results) {
		return nil
	}
	r := &l.results[l.cursor]
	if r.IsSentinel() {
		return nil
	}
	return r
}

// CursorUp moves the selection up one row.
func (l *ResultList) CursorUp() {
	if l.cursor > 0 {
		l.cursor--
	}
	l.scrollToCursor()
}

// CursorDown moves the selection down one row.
func (l *ResultList) CursorDown() {
	if l.cursor < len(l.results)-1 {
		l.cursor++
	}
	l.scrollToCursor()
}

// SetSize sets the viewport dimensions.
func (l *ResultList) SetSize(width, height int) {
	l.width = width
	if height > 0 {
		l.height = height
	}
	l.scrollToCursor()
}

// Len returns the number of displayed results.
func (l *ResultList) Len() int {
	return len(l.results)
}

func (l *ResultList) scrollToCursor() {
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+l.height {
		l.offset = l.cursor - l.height + 1
	}
}

// View renders the visible window of results.
func (l *ResultList) View() string {
	if len(l.results) == 0 {
		return l.styles.Muted.Render("  No gists to show.")
	}

	end := l.offset + l.height
	if end > len(l.results) {
		end = len(l.results)
	}

	var b strings.Builder
	for i := l.offset; i < end; i++ {
		r := &l.results[i]

		line := l.renderRow(r)
		if i == l.cursor && !r.IsSentinel() {
			line = l.styles.Selected.Render("▸ " + line)
		} else {
			line = "  " + line
		}

		b.WriteString(line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (l *ResultList) renderRow(r *domain.RankedResult) string {
	if r.IsSentinel() {
		return l.styles.Muted.Render(r.Preview)
	}

	label := r.Name
	if folder := strings.Join(r.FolderPath, "/"); folder != "" {
		label = folder + "/" + label
	}

	parts := []string{l.styles.Normal.Render(label)}

	if r.Visibility == domain.VisibilityPrivate {
		parts = append(parts, l.styles.Muted.Render("(private)"))
	}

	parts = append(parts, l.styles.Muted.Render(locationOf(r)))

	if r.Preview != "" && r.FieldKind != domain.FieldName {
		parts = append(parts, l.styles.Subtitle.Render(r.Preview))
	}

	if len(r.Tags) > 0 {
		parts = append(parts, l.styles.Tag.Render("#"+strings.Join(r.Tags, " #")))
	}

	return strings.Join(parts, "  ")
}

// locationOf describes where in the document the match occurred.
func locationOf(r *domain.RankedResult) string {
	switch r.FieldKind {
	case domain.FieldContent:
		return fmt.Sprintf("%s:%d", r.SubKey, r.LineNumber)
	case domain.FieldFilename:
		return r.SubKey
	default:
		return string(r.FieldKind)
	}
}
