// Package analysis runs the full résumé/job comparison pipeline.
package analysis

import (
	"fmt"
	"time"

	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/sections"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/suggestions"
	"github.com/jonathan/resume-matcher/internal/types"
)

// AnalysisError is returned when any pipeline step fails unexpectedly.
type AnalysisError struct {
	Message string
	Cause   error
}

func (e *AnalysisError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AnalysisError) Unwrap() error {
	return e.Cause
}

// Analyze compares resumeText against jobText. It never returns a partial
// result: on failure the result is nil and the error is an *AnalysisError.
func Analyze(resumeText, jobText string) (result *types.AnalysisResult, err error) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			cause, ok := r.(error)
			if !ok {
				cause = fmt.Errorf("%v", r)
			}
			result = nil
			err = &AnalysisError{Message: "analysis failed", Cause: cause}
		}
	}()

	result = pipeline(resumeText, jobText)
	result.ProcessingTimeMs = time.Since(start).Milliseconds()
	return result, nil
}

// pipeline is swapped out in tests.
var pipeline = run

func run(resumeText, jobText string) *types.AnalysisResult {
	resumeNorm := parsing.Normalize(resumeText)
	jobNorm := parsing.Normalize(jobText)

	resumeTerms := parsing.ExtractTerms(resumeNorm)
	jobTerms := parsing.ExtractTerms(jobNorm)
	keywords := matching.MatchKeywords(resumeTerms, jobTerms)

	skillMatch := skills.MatchSkills(skills.ExtractSkills(resumeNorm), skills.ExtractSkills(jobNorm))
	sectionScores := sections.Analyze(resumeText, jobText)

	return &types.AnalysisResult{
		OverallScore:   scoring.Overall(keywords, skillMatch, sectionScores),
		MatchedSkills:  skillMatch.Matched,
		MissingSkills:  skillMatch.Missing,
		KeywordMatches: keywords,
		Sections:       sectionScores,
		Suggestions: suggestions.Generate(suggestions.Input{
			Skills:   skillMatch,
			Sections: sectionScores,
		}),
		ReadabilityScore:      scoring.Readability(resumeText),
		ATSCompatibilityScore: scoring.ATSCompatibility(resumeText),
	}
}
