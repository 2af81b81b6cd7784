package sections

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocab"
)

const (
	educationBase = 60
	degreeBonus   = 20
	fieldBonus    = 15
)

type degreeFamily struct {
	level   string
	pattern *regexp.Regexp
}

var degreeFamilies = []degreeFamily{
	{level: "bachelor", pattern: regexp.MustCompile(`\b(?:bachelor'?s?|b\.?s\.?c?|b\.?a|undergraduate)\b`)},
	{level: "master", pattern: regexp.MustCompile(`\b(?:master'?s?|m\.?s\.?c?|mba|graduate degree)\b`)},
	{level: "doctorate", pattern: regexp.MustCompile(`\b(?:ph\.?d|doctorate|doctoral)\b`)},
	{level: "associate", pattern: regexp.MustCompile(`\b(?:associate'?s? degree|diploma|certificate|certification)\b`)},
}

// Education scores degree levels and relevant fields of study.
func Education(text string) types.SectionScore {
	lower := strings.ToLower(text)
	score := educationBase

	levels := make([]string, 0, len(degreeFamilies))
	for _, family := range degreeFamilies {
		if family.pattern.MatchString(lower) {
			score += degreeBonus
			levels = append(levels, family.level)
		}
	}

	relevant := false
	for _, field := range vocab.MustGet(vocab.SectionsFile, "relevant_fields") {
		if strings.Contains(lower, field) {
			score += fieldBonus
			relevant = true
		}
	}

	feedback := "Education section is well presented"
	switch {
	case len(levels) == 0:
		feedback = "Include your degree or certifications"
	case !relevant:
		feedback = "Highlight the field of study relevant to the role"
	}

	return types.SectionScore{
		Score:    clamp(score),
		Feedback: feedback,
		Education: &types.EducationDetails{
			DegreeFound:    len(levels) > 0,
			RelevantDegree: relevant,
			DegreeLevels:   levels,
		},
	}
}
