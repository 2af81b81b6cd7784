package sections

import (
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	formattingBase = 80
	minLength      = 1000
	maxLength      = 4000
)

// formattingRule is one deduction applied when its check fails.
type formattingRule struct {
	penalty int
	issue   string
	failed  func(text string, length int) bool
}

var formattingRules = []formattingRule{
	{
		penalty: 10,
		issue:   "No clear section headers detected",
		failed:  func(text string, _ int) bool { return !HasHeader(text) },
	},
	{
		penalty: 10,
		issue:   "No bullet points found",
		failed:  func(text string, _ int) bool { return !strings.ContainsAny(text, "•-*") },
	},
	{
		penalty: 15,
		issue:   "Resume is too short (under 1000 characters)",
		failed:  func(_ string, length int) bool { return length < minLength },
	},
	{
		penalty: 5,
		issue:   "Resume may be too long (over 4000 characters)",
		failed:  func(_ string, length int) bool { return length > maxLength },
	},
}

// Formatting scores structure on the raw résumé text.
func Formatting(text string) types.SectionScore {
	length := utf8.RuneCountInString(text)
	score := formattingBase
	issues := make([]string, 0)

	for _, rule := range formattingRules {
		if rule.failed(text, length) {
			score -= rule.penalty
			issues = append(issues, rule.issue)
		}
	}

	feedback := "Good formatting and structure"
	if len(issues) > 0 {
		feedback = "Formatting could be improved"
	}

	return types.SectionScore{
		Score:    clamp(score),
		Feedback: feedback,
		Issues:   issues,
	}
}
