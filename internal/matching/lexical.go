// Package matching provides the fuzzy term predicate and keyword matching between résumé and job terms.
package matching

import (
	"strings"

	"github.com/xrash/smetrics"
)

const (
	// SimilarityThreshold is the Jaro-Winkler score a pair must exceed to match.
	SimilarityThreshold = 0.8

	// Standard Jaro-Winkler parameters: the prefix boost applies above 0.7,
	// over at most four leading characters, scaled by 0.1.
	boostThreshold = 0.7
	prefixSize     = 4
)

// Similarity returns the Jaro-Winkler similarity of two lowercased strings.
// The pair is put in lexical order first so the result does not depend on
// argument order.
func Similarity(a, b string) float64 {
	a, b = fold(a), fold(b)
	if a > b {
		a, b = b, a
	}
	return smetrics.JaroWinkler(a, b, boostThreshold, prefixSize)
}

// Matches reports whether two terms are equal after case folding or similar
// enough to be treated as the same term. Matches(a, b) == Matches(b, a).
func Matches(a, b string) bool {
	fa, fb := fold(a), fold(b)
	if fa == fb {
		return true
	}
	if fa == "" || fb == "" {
		return false
	}
	return Similarity(fa, fb) > SimilarityThreshold
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
