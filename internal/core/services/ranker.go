package services

import (
	"sort"
	"strings"

	"github.com/fennec-labs/gistfind-cli/internal/core/domain"
)

// exactContextScore is the dominant tier awarded when a candidate's
// preview equals the query or its context contains it verbatim.
const exactContextScore = 1000

// dedupe drops all but the first candidate per deduplication key,
// preserving arrival order. Running it twice yields the same output.
func dedupe(candidates []domain.MatchCandidate) []domain.MatchCandidate {
	seen := make(map[string]struct{}, len(candidates))
	out := candidates[:0:0]
	for _, c := range candidates {
		key := c.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return out
}

// rank orders candidates by a three-tier comparison: exact-context
// presence first, then field priority, then combined score. The sort
// is stable, so scan order breaks any remaining ties and repeated
// runs over the same input produce identical output.
func rank(candidates []domain.MatchCandidate, query string) []domain.MatchCandidate {
	q := strings.ToLower(query)

	exact := make([]int, len(candidates))
	for i := range candidates {
		exact[i] = exactContextBonus(&candidates[i], q)
	}

	idx := make([]int, len(candidates))
	for i := range idx {
		idx[i] = i
	}

	sort.SliceStable(idx, func(a, b int) bool {
		ia, ib := idx[a], idx[b]
		if exact[ia] != exact[ib] {
			return exact[ia] > exact[ib]
		}
		pa, pb := candidates[ia].FieldKind.Priority(), candidates[ib].FieldKind.Priority()
		if pa != pb {
			return pa > pb
		}
		return candidates[ia].Score > candidates[ib].Score
	})

	out := make([]domain.MatchCandidate, len(candidates))
	for i, j := range idx {
		out[i] = candidates[j]
	}
	return out
}

// exactContextBonus detects a verbatim hit: the preview is exactly the
// query, or the context contains it as a substring. Both checks are
// case-insensitive; the query is already lowered by the caller.
func exactContextBonus(c *domain.MatchCandidate, loweredQuery string) int {
	if loweredQuery == "" {
		return 0
	}
	if strings.ToLower(c.Preview) == loweredQuery {
		return exactContextScore
	}
	if strings.Contains(strings.ToLower(c.Context), loweredQuery) {
		return exactContextScore
	}
	return 0
}
