package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestKeywordFindsCloseMatch(t *testing.T) {
	t.Parallel()

	vocab := map[string]bool{"SELECT": true, "FROM": true, "WHERE": true}
	assert.Equal(t, "SELECT", SuggestKeyword("SELCT", vocab))
	assert.Equal(t, "FROM", SuggestKeyword("from", vocab))
}

func TestSuggestKeywordNoMatchBeyondThreshold(t *testing.T) {
	t.Parallel()
	vocab := map[string]bool{"SELECT": true}
	assert.Equal(t, "", SuggestKeyword("ZZZZZZZZZZ", vocab))
}

func TestSuggestKeywordEmptyVocabulary(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", SuggestKeyword("SELECT", map[string]bool{}))
}

func TestLevenshteinBasic(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, levenshtein("abc", "abc"))
	assert.Equal(t, 3, levenshtein("", "abc"))
	assert.Equal(t, 1, levenshtein("SELECT", "SELET"))
}
