package sections

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocab"
)

const (
	perHitScore = 10
	goodMixHits = 5
)

// SkillsSection counts which section keywords appear at least once in text.
func SkillsSection(text string) types.SectionScore {
	lower := strings.ToLower(text)
	technical := countPresent(lower, vocab.MustGet(vocab.SectionsFile, "section_technical"))
	soft := countPresent(lower, vocab.MustGet(vocab.SectionsFile, "section_soft"))

	feedback := "Add more technical and soft skill keywords"
	if technical+soft > goodMixHits {
		feedback = "Good mix of technical and soft skills"
	}

	return types.SectionScore{
		Score:    min((technical+soft)*perHitScore, 100),
		Feedback: feedback,
		Skills: &types.SkillsSectionDetails{
			TechnicalHits: technical,
			SoftHits:      soft,
		},
	}
}

func countPresent(lower string, words []string) int {
	hits := 0
	for _, w := range words {
		if strings.Contains(lower, w) {
			hits++
		}
	}
	return hits
}
