package services

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// fuzzyMatchWeight is the weight of an in-order subsequence match
// relative to plain substring containment.
const fuzzyMatchWeight = 0.5

// ScoreTokens computes a normalised match score for a title against
// the space-split search text. A token contained in the title scores
// full weight; a token whose characters appear in order (a fuzzy
// subsequence match) scores half. The result is the matched weight
// averaged over the non-empty tokens.
//
// The function is pure and deterministic. It returns 0 when the title
// is empty, the query holds no non-empty tokens, or nothing matched.
// Zero is a valid score, not an error: zero-score results are still
// emitted and filtering is the caller's decision.
func ScoreTokens(title, query string) float64 {
	if title == "" {
		return 0
	}

	titleLower := strings.ToLower(title)

	var matched float64
	var total int
	for _, token := range strings.Split(query, " ") {
		if token == "" {
			continue
		}
		total++

		token = strings.ToLower(token)
		switch {
		case strings.Contains(titleLower, token):
			matched++
		case len(fuzzy.Find(token, []string{titleLower})) > 0:
			matched += fuzzyMatchWeight
		}
	}

	if total == 0 {
		return 0
	}
	return matched / float64(total)
}
