// Package sections scores a résumé on five independent heuristics:
// formatting, keyword density, experience, education and the skills section.
package sections

import (
	"regexp"

	"github.com/jonathan/resume-matcher/internal/types"
)

// headerLine matches a line made of uppercase words, such as "WORK EXPERIENCE".
var headerLine = regexp.MustCompile(`(?m)^[ \t]*[A-Z][A-Z &/]{2,}:?[ \t\r]*$`)

// HasHeader reports whether text contains an all-caps header line.
func HasHeader(text string) bool {
	return headerLine.MatchString(text)
}

// Analyze runs all five section heuristics.
func Analyze(resumeText, jobText string) types.Sections {
	return types.Sections{
		Formatting: Formatting(resumeText),
		Keywords:   KeywordDensity(resumeText, jobText),
		Experience: Experience(resumeText),
		Education:  Education(resumeText),
		Skills:     SkillsSection(resumeText),
	}
}

// Average returns the arithmetic mean of the five section scores.
func Average(s types.Sections) float64 {
	ordered := s.Ordered()
	total := 0
	for _, section := range ordered {
		total += section.Score.Score
	}
	return float64(total) / float64(len(ordered))
}

func clamp(score int) int {
	return max(0, min(score, 100))
}
