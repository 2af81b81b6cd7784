package sections

import (
	"math"

	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocab"
)

const (
	minCandidateLength = 4
	densityBoost       = 1.2
	goodDensityScore   = 70
)

// KeywordDensity measures how many significant job words appear verbatim in the résumé.
func KeywordDensity(resumeText, jobText string) types.SectionScore {
	stopwords := vocab.Set(vocab.StopwordsFile, "density")

	resumeTokens := make(map[string]struct{})
	for _, token := range parsing.Tokenize(parsing.Normalize(resumeText)) {
		resumeTokens[token] = struct{}{}
	}

	candidates := make(map[string]struct{})
	for _, token := range parsing.Tokenize(parsing.Normalize(jobText)) {
		if len(token) < minCandidateLength {
			continue
		}
		if _, stop := stopwords[token]; stop {
			continue
		}
		candidates[token] = struct{}{}
	}

	matched := 0
	for token := range candidates {
		if _, ok := resumeTokens[token]; ok {
			matched++
		}
	}

	percentage := 0.0
	if len(candidates) > 0 {
		percentage = float64(matched) / float64(len(candidates)) * 100
	}
	score := int(math.Round(math.Min(percentage*densityBoost, 100)))

	feedback := "Good keyword optimization"
	if score <= goodDensityScore {
		feedback = "Add more keywords from the job description"
	}

	return types.SectionScore{
		Score:    score,
		Feedback: feedback,
		Keywords: &types.KeywordDensity{
			MatchedCount:  matched,
			TotalKeywords: len(candidates),
			Percentage:    int(math.Round(percentage)),
		},
	}
}
