package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fennec-labs/gistfind-cli/internal/core/domain"
)

// TestDedupe_FirstWins verifies only the first candidate per key
// survives, in arrival order.
func TestDedupe_FirstWins(t *testing.T) {
	in := []domain.MatchCandidate{
		{DocumentID: "g1", FieldKind: domain.FieldName, Score: 700},
		{DocumentID: "g1", FieldKind: domain.FieldName, Score: 900},
		{DocumentID: "g1", FieldKind: domain.FieldContent, SubKey: "a.txt", LineNumber: 3, Score: 100},
		{DocumentID: "g1", FieldKind: domain.FieldContent, SubKey: "a.txt", LineNumber: 4, Score: 100},
		{DocumentID: "g2", FieldKind: domain.FieldName, Score: 500},
	}

	out := dedupe(in)
	require.Len(t, out, 4)
	assert.Equal(t, 700, out[0].Score)
	assert.Equal(t, 3, out[1].LineNumber)
	assert.Equal(t, 4, out[2].LineNumber)
	assert.Equal(t, "g2", out[3].DocumentID)
}

// TestDedupe_Idempotent verifies deduplicating twice changes nothing.
func TestDedupe_Idempotent(t *testing.T) {
	in := []domain.MatchCandidate{
		{DocumentID: "g1", FieldKind: domain.FieldName},
		{DocumentID: "g1", FieldKind: domain.FieldName},
		{DocumentID: "g1", FieldKind: domain.FieldTag, SubKey: "react"},
	}

	once := dedupe(in)
	twice := dedupe(once)
	assert.Equal(t, once, twice)
}

// TestRank_ExactContextDominates verifies a verbatim context hit beats
// higher field priority and higher score.
func TestRank_ExactContextDominates(t *testing.T) {
	in := []domain.MatchCandidate{
		{DocumentID: "g1", FieldKind: domain.FieldName, Score: 999, Preview: "rxeact", Context: "rxeact"},
		{DocumentID: "g2", FieldKind: domain.FieldContent, Score: 10, Preview: "uses react here", Context: "uses react here"},
	}

	out := rank(in, "react")
	require.Len(t, out, 2)
	assert.Equal(t, "g2", out[0].DocumentID)
	assert.Equal(t, "g1", out[1].DocumentID)
}

// TestRank_FieldPriorityWithinTier verifies the name, tag, description,
// filename, content ordering when the exact tier ties.
func TestRank_FieldPriorityWithinTier(t *testing.T) {
	in := []domain.MatchCandidate{
		{DocumentID: "c", FieldKind: domain.FieldContent, Score: 5000, Context: "react"},
		{DocumentID: "f", FieldKind: domain.FieldFilename, Score: 5000, Context: "react"},
		{DocumentID: "d", FieldKind: domain.FieldDescription, Score: 5000, Context: "react"},
		{DocumentID: "t", FieldKind: domain.FieldTag, Score: 5000, Context: "react"},
		{DocumentID: "n", FieldKind: domain.FieldName, Score: 5000, Context: "react"},
	}

	out := rank(in, "react")
	ids := []string{out[0].DocumentID, out[1].DocumentID, out[2].DocumentID, out[3].DocumentID, out[4].DocumentID}
	assert.Equal(t, []string{"n", "t", "d", "f", "c"}, ids)
}

// TestRank_ScoreBreaksPriorityTies verifies combined score orders
// candidates of the same kind and exact tier.
func TestRank_ScoreBreaksPriorityTies(t *testing.T) {
	in := []domain.MatchCandidate{
		{DocumentID: "low", FieldKind: domain.FieldName, Score: 100},
		{DocumentID: "high", FieldKind: domain.FieldName, Score: 900},
	}

	out := rank(in, "react")
	assert.Equal(t, "high", out[0].DocumentID)
	assert.Equal(t, "low", out[1].DocumentID)
}

// TestRank_StableOnFullTies verifies candidates that tie on every tier
// keep their scan order.
func TestRank_StableOnFullTies(t *testing.T) {
	in := []domain.MatchCandidate{
		{DocumentID: "first", FieldKind: domain.FieldContent, Score: 50},
		{DocumentID: "second", FieldKind: domain.FieldContent, Score: 50},
		{DocumentID: "third", FieldKind: domain.FieldContent, Score: 50},
	}

	out := rank(in, "react")
	assert.Equal(t, "first", out[0].DocumentID)
	assert.Equal(t, "second", out[1].DocumentID)
	assert.Equal(t, "third", out[2].DocumentID)
}

// TestRank_EmptyQuery verifies browse-mode ranking never awards the
// exact tier and keeps input order for equal rows.
func TestRank_EmptyQuery(t *testing.T) {
	in := []domain.MatchCandidate{
		{DocumentID: "a", FieldKind: domain.FieldName},
		{DocumentID: "b", FieldKind: domain.FieldName},
	}

	out := rank(in, "")
	assert.Equal(t, "a", out[0].DocumentID)
	assert.Equal(t, "b", out[1].DocumentID)
}

// TestExactContextBonus verifies both trigger conditions: preview
// equality and context containment.
func TestExactContextBonus(t *testing.T) {
	tests := []struct {
		name    string
		preview string
		context string
		want    int
	}{
		{name: "preview equals query", preview: "React", context: "", want: 1000},
		{name: "context contains query", preview: "something else", context: "we love React here", want: 1000},
		{name: "neither", preview: "rxeact", context: "rxeact", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := domain.MatchCandidate{Preview: tt.preview, Context: tt.context}
			assert.Equal(t, tt.want, exactContextBonus(&c, "react"))
		})
	}
}
