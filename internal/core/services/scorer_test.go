package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreTokens_FuzzySubsequenceMatch(t *testing.T) {
	score := ScoreTokens("Go Documentation Site", "docs")

	// "docs" is not a substring but is an in-order subsequence.
	assert.InDelta(t, 0.5, score, 0.001)
}

func TestScoreTokens_ExactTokenMatch(t *testing.T) {
	assert.InDelta(t, 1.0, ScoreTokens("Example Site", "example"), 0.001)
}

func TestScoreTokens_CaseInsensitive(t *testing.T) {
	assert.InDelta(t, 1.0, ScoreTokens("Example Site", "EXAMPLE"), 0.001)
	assert.InDelta(t, 1.0, ScoreTokens("EXAMPLE SITE", "example"), 0.001)
}

func TestScoreTokens_AveragesOverTokens(t *testing.T) {
	// "example" is contained, "zzzqqq" matches nothing.
	score := ScoreTokens("Example Site", "example zzzqqq")

	assert.InDelta(t, 0.5, score, 0.001)
}

func TestScoreTokens_MixedContainmentAndFuzzy(t *testing.T) {
	// "site" is contained (1.0), "exmpl" is a subsequence of
	// "example" (0.5); the average is 0.75.
	score := ScoreTokens("Example Site", "site exmpl")

	assert.InDelta(t, 0.75, score, 0.001)
}

func TestScoreTokens_NoMatch(t *testing.T) {
	assert.Zero(t, ScoreTokens("Example Site", "zzzqqq"))
}

func TestScoreTokens_EmptyTitle(t *testing.T) {
	assert.Zero(t, ScoreTokens("", "example"))
}

func TestScoreTokens_EmptyQuery(t *testing.T) {
	assert.Zero(t, ScoreTokens("Example Site", ""))
	assert.Zero(t, ScoreTokens("Example Site", "   "))
}

func TestScoreTokens_SkipsEmptyTokens(t *testing.T) {
	// Consecutive spaces produce empty tokens; they must not dilute
	// the average.
	assert.InDelta(t, 1.0, ScoreTokens("Example Site", "example  site"), 0.001)
}

func TestScoreTokens_Deterministic(t *testing.T) {
	first := ScoreTokens("Go Documentation", "go docs")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ScoreTokens("Go Documentation", "go docs"))
	}
}

func TestScoreTokens_WithinUnitInterval(t *testing.T) {
	cases := []struct{ title, query string }{
		{"Example Site", "example site extra"},
		{"a", "aaaa aaaa aaaa"},
		{"Some Long Page Title With Words", "page words title"},
	}
	for _, c := range cases {
		score := ScoreTokens(c.title, c.query)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}
