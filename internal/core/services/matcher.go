package services

import (
	"strings"
	"unicode/utf8"
)

// Scoring tiers for the fuzzy matcher. Exact equality dominates,
// substring containment comes next, and an ordered-subsequence match
// scores by compactness and position.
const (
	// exactScore is awarded for case-insensitive equality.
	exactScore = 1000

	// substringBase is the floor for any substring containment match.
	substringBase = 500

	// substringPositionMax is the position bonus for a substring match
	// at index zero; it decays by two per index and never goes negative.
	substringPositionMax = 100

	// gapScoreMax is the compactness score for a subsequence match with
	// no unmatched characters between matched ones.
	gapScoreMax = 100

	// positionBonusMax is the bonus for a subsequence match starting at
	// index zero; it decays by one per index.
	positionBonusMax = 50
)

// Match reports whether text matches query and with what score.
//
// In priority order: case-insensitive equality scores 1000; substring
// containment scores 500 plus a position bonus favouring early
// occurrences; otherwise every query character must appear in text in
// order (not necessarily contiguous) and the score rewards compact,
// early subsequences. Empty text never matches, and an empty query is
// treated as no match (callers bypass scanning entirely for it).
//
// Match is deterministic and free of side effects.
func Match(text, query string) (int, bool) {
	if text == "" || query == "" {
		return 0, false
	}

	t := strings.ToLower(text)
	q := strings.ToLower(query)

	if t == q {
		return exactScore, true
	}

	if idx := strings.Index(t, q); idx >= 0 {
		// Position is counted in runes, like the subsequence tier, so
		// multibyte text ahead of the match does not inflate it.
		pos := utf8.RuneCountInString(t[:idx])
		bonus := substringPositionMax - 2*pos
		if bonus < 0 {
			bonus = 0
		}
		return substringBase + bonus, true
	}

	return matchSubsequence([]rune(t), []rune(q))
}

// matchSubsequence matches query runes against text runes in order,
// taking the leftmost position for each query rune.
func matchSubsequence(text, query []rune) (int, bool) {
	firstIdx := -1
	prevIdx := -1
	gapPenalty := 0

	ti := 0
	for _, qr := range query {
		found := -1
		for ; ti < len(text); ti++ {
			if text[ti] == qr {
				found = ti
				ti++
				break
			}
		}
		if found < 0 {
			return 0, false
		}
		if firstIdx < 0 {
			firstIdx = found
		} else {
			gapPenalty += found - prevIdx - 1
		}
		prevIdx = found
	}

	gapScore := gapScoreMax - gapPenalty
	if gapScore < 0 {
		gapScore = 0
	}
	positionBonus := positionBonusMax - firstIdx
	if positionBonus < 0 {
		positionBonus = 0
	}

	return gapScore + positionBonus, true
}
