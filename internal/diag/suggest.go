package diag

import "strings"

// SuggestKeyword finds the closest keyword to an unrecognized word, for
// "did you mean" hints on unknown-token errors. Adapted from the
// teacher's engine/parser/ast/errors.go and engine/lexer/errors.go, which
// both carried a near-identical SuggestSimilar/levenshtein pair run
// against mapping.OperationGroups/QueryClauses/OperatorMap; here it runs
// against a caller-supplied vocabulary so both the lexer (keywords) and
// the parser (operators) can reuse it without depending on each other's
// tables.
func SuggestKeyword(unknown string, vocabulary map[string]bool) string {
	unknown = strings.ToUpper(unknown)

	const maxDistance = 2
	best := ""
	bestDist := maxDistance + 1

	for word := range vocabulary {
		d := levenshtein(unknown, strings.ToUpper(word))
		if d < bestDist && d <= maxDistance {
			bestDist = d
			best = word
		}
	}
	return best
}

func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
