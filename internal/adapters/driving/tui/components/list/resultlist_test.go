package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fennec-labs/gistfind-cli/internal/core/domain"
)

func nameResult(id, name string) domain.RankedResult {
	return domain.RankedResult{
		MatchCandidate: domain.MatchCandidate{
			DocumentID: id,
			FieldKind:  domain.FieldName,
			Preview:    name,
		},
		Name:       name,
		Visibility: domain.VisibilityPublic,
	}
}

// TestResultList_SetResultsResetsCursor tests that new results move
// the cursor back to the top
func TestResultList_SetResultsResetsCursor(t *testing.T) {
	l := NewResultList(nil)
	l.SetResults([]domain.RankedResult{
		nameResult("1", "a"), nameResult("2", "b"), nameResult("3", "c"),
	})
	l.CursorDown()
	l.CursorDown()

	l.SetResults([]domain.RankedResult{nameResult("4", "d")})

	selected := l.Selected()
	require.NotNil(t, selected)
	assert.Equal(t, "d", selected.Name)
}

// TestResultList_CursorBounds tests cursor clamping at both ends
func TestResultList_CursorBounds(t *testing.T) {
	l := NewResultList(nil)
	l.SetResults([]domain.RankedResult{nameResult("1", "a"), nameResult("2", "b")})

	l.CursorUp()
	require.NotNil(t, l.Selected())
	assert.Equal(t, "a", l.Selected().Name)

	l.CursorDown()
	l.CursorDown()
	l.CursorDown()
	assert.Equal(t, "b", l.Selected().Name)
}

// TestResultList_SelectedNilCases tests selection on empty and
// sentinel-only lists
func TestResultList_SelectedNilCases(t *testing.T) {
	l := NewResultList(nil)
	assert.Nil(t, l.Selected())

	l.SetResults([]domain.RankedResult{domain.NoResultsResult("xyzzy")})
	assert.Nil(t, l.Selected())
}

// TestResultList_ViewScrolls tests that the viewport follows the cursor
func TestResultList_ViewScrolls(t *testing.T) {
	l := NewResultList(nil)
	l.SetSize(80, 2)
	l.SetResults([]domain.RankedResult{
		nameResult("1", "alpha"),
		nameResult("2", "bravo"),
		nameResult("3", "charlie"),
	})

	view := l.View()
	assert.Contains(t, view, "alpha")
	assert.NotContains(t, view, "charlie")

	l.CursorDown()
	l.CursorDown()

	view = l.View()
	assert.Contains(t, view, "charlie")
	assert.NotContains(t, view, "alpha")
}

// TestResultList_ViewEmpty tests the empty-list placeholder
func TestResultList_ViewEmpty(t *testing.T) {
	l := NewResultList(nil)
	assert.Contains(t, l.View(), "No gists to show")
}

// TestResultList_ViewSentinel tests the no-results row rendering
func TestResultList_ViewSentinel(t *testing.T) {
	l := NewResultList(nil)
	l.SetResults([]domain.RankedResult{domain.NoResultsResult("xyzzy")})

	assert.Contains(t, l.View(), `no results found for "xyzzy"`)
}

// TestResultList_RowShowsFolderAndTags tests the row layout
func TestResultList_RowShowsFolderAndTags(t *testing.T) {
	l := NewResultList(nil)
	r := nameResult("1", "React Hooks")
	r.FolderPath = []string{"frontend", "react"}
	r.Tags = []string{"react", "hooks"}
	l.SetResults([]domain.RankedResult{r})

	view := l.View()
	assert.Contains(t, view, "frontend/react/React Hooks")
	assert.Contains(t, view, "#react #hooks")
}

// TestResultList_RowShowsPrivateMarker tests the visibility marker
func TestResultList_RowShowsPrivateMarker(t *testing.T) {
	l := NewResultList(nil)
	r := nameResult("1", "Secrets")
	r.Visibility = domain.VisibilityPrivate
	l.SetResults([]domain.RankedResult{r})

	assert.Contains(t, l.View(), "(private)")
}

// TestLocationOf tests the match-location formatting per field kind
func TestLocationOf(t *testing.T) {
	tests := []struct {
		name   string
		result domain.RankedResult
		want   string
	}{
		{
			name: "content includes file and line",
			result: domain.RankedResult{MatchCandidate: domain.MatchCandidate{
				FieldKind: domain.FieldContent, SubKey: "useFetch.js", LineNumber: 12,
			}},
			want: "useFetch.js:12",
		},
		{
			name: "filename is the file itself",
			result: domain.RankedResult{MatchCandidate: domain.MatchCandidate{
				FieldKind: domain.FieldFilename, SubKey: "useFetch.js",
			}},
			want: "useFetch.js",
		},
		{
			name: "tag falls back to the kind",
			result: domain.RankedResult{MatchCandidate: domain.MatchCandidate{
				FieldKind: domain.FieldTag, SubKey: "react",
			}},
			want: "tag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, locationOf(&tt.result))
		})
	}
}
