// Package scoring combines analyzer outputs into the overall score and computes
// the readability and ATS compatibility side scores.
package scoring

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-matcher/internal/sections"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Weights of the overall score.
const (
	KeywordWeight = 0.30
	SkillsWeight  = 0.25
	SectionWeight = 0.45
)

// SkillsScore is the share of job skills covered by the résumé, 0-100.
func SkillsScore(skills types.SkillMatchResult) float64 {
	total := len(skills.Matched) + len(skills.Missing)
	if total == 0 {
		return 0
	}
	return float64(len(skills.Matched)) / float64(total) * 100
}

// Overall blends keyword, skill and section scores into one 0-100 value.
func Overall(keywords types.KeywordMatchResult, skills types.SkillMatchResult, s types.Sections) int {
	raw := float64(keywords.Percentage)*KeywordWeight +
		SkillsScore(skills)*SkillsWeight +
		sections.Average(s)*SectionWeight
	return int(math.Round(math.Max(0, math.Min(raw, 100))))
}

var sentenceBreak = regexp.MustCompile(`[.!?]+`)

const (
	maxWordsPerSentence = 20
	maxCharsPerWord     = 6
	readabilityFloor    = 60
)

// Readability penalizes long sentences and long words. Text without
// sentences or words scores 0.
func Readability(text string) int {
	sentences := 0
	for _, fragment := range sentenceBreak.Split(text, -1) {
		if strings.TrimSpace(fragment) != "" {
			sentences++
		}
	}
	words := strings.Fields(text)
	if sentences == 0 || len(words) == 0 {
		return 0
	}

	chars := 0
	for _, w := range words {
		chars += utf8.RuneCountInString(w)
	}

	score := 100
	if float64(len(words))/float64(sentences) > maxWordsPerSentence {
		score -= 10
	}
	if float64(chars)/float64(len(words)) > maxCharsPerWord {
		score -= 10
	}
	return max(score, readabilityFloor)
}

var (
	dateRange   = regexp.MustCompile(`\b\d{4}\s*-\s*\d{4}\b`)
	tripleSpace = regexp.MustCompile(` {3,}`)
)

// ATSCompatibility estimates how well automated parsers will read the text.
func ATSCompatibility(text string) int {
	score := 80
	if hasNonASCII(text) {
		score -= 5
	}
	if strings.Contains(text, "\t") {
		score -= 5
	}
	if tripleSpace.MatchString(text) {
		score -= 5
	}
	if sections.HasHeader(text) {
		score += 10
	}
	if dateRange.MatchString(text) {
		score += 5
	}
	return max(0, min(score, 100))
}

func hasNonASCII(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] >= utf8.RuneSelf {
			return true
		}
	}
	return false
}
