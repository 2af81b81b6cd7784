package matching

import (
	"math"
	"sort"

	"github.com/jonathan/resume-matcher/internal/types"
)

// MatchKeywords looks up every job term among the résumé terms.
// A job term is found when some résumé term Matches it; an exact counterpart
// is preferred over a fuzzy one when reporting the résumé frequency.
// Details are ordered by job term importance, descending.
func MatchKeywords(resumeTerms, jobTerms []types.Term) types.KeywordMatchResult {
	details := make([]types.KeywordDetail, 0, len(jobTerms))
	matched := 0

	for _, jobTerm := range jobTerms {
		detail := types.KeywordDetail{
			Term:       jobTerm.Text,
			Importance: jobTerm.Importance,
		}
		if hit, ok := findTerm(jobTerm.Text, resumeTerms); ok {
			detail.Found = true
			detail.Frequency = hit.Frequency
			matched++
		}
		details = append(details, detail)
	}

	sort.SliceStable(details, func(i, j int) bool {
		return details[i].Importance > details[j].Importance
	})

	return types.KeywordMatchResult{
		TotalJobTerms: len(jobTerms),
		MatchedCount:  matched,
		Percentage:    Percentage(matched, len(jobTerms)),
		Details:       details,
	}
}

// Percentage returns round(part/total*100), or 0 when total is 0.
func Percentage(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

func findTerm(text string, terms []types.Term) (types.Term, bool) {
	for _, term := range terms {
		if term.Text == text {
			return term, true
		}
	}
	for _, term := range terms {
		if Matches(term.Text, text) {
			return term, true
		}
	}
	return types.Term{}, false
}
