package parsing

import (
	"math"
	"sort"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocab"
)

const (
	// MaxTerms caps the number of terms kept per document.
	MaxTerms = 50
	// minTermLength drops tokens shorter than this many characters.
	minTermLength = 3
	// minImportance drops tokens weighted below this value.
	minImportance = 0.1
)

// singleDocumentIDF is the inverse document frequency of a term that appears
// in the only document of a one-document corpus: 1 + ln(N / (1 + df)) with
// N = 1 and df = 1.
var singleDocumentIDF = 1 + math.Log(1.0/2.0)

// Importance returns the weight of a token seen frequency times in its document.
func Importance(frequency int) float64 {
	return float64(frequency) * singleDocumentIDF
}

// ExtractTerms returns the salient terms of one normalized document ordered by
// importance (descending), ties broken by first appearance, capped at MaxTerms.
// Stopwords are not counted.
func ExtractTerms(normalized string) []types.Term {
	stopwords := vocab.Set(vocab.StopwordsFile, "terms")

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, token := range Tokenize(normalized) {
		if _, stop := stopwords[token]; stop {
			continue
		}
		if _, seen := counts[token]; !seen {
			order = append(order, token)
		}
		counts[token]++
	}

	terms := make([]types.Term, 0, len(order))
	for _, token := range order {
		if len(token) < minTermLength {
			continue
		}
		importance := Importance(counts[token])
		if importance < minImportance {
			continue
		}
		terms = append(terms, types.Term{
			Text:       token,
			Importance: importance,
			Frequency:  counts[token],
		})
	}

	sort.SliceStable(terms, func(i, j int) bool {
		return terms[i].Importance > terms[j].Importance
	})

	if len(terms) > MaxTerms {
		terms = terms[:MaxTerms]
	}
	return terms
}
