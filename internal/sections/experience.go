package sections

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocab"
)

const (
	experienceBase   = 70
	perYearBonus     = 5
	maxYearsBonus    = 25
	achievementBonus = 15
	minAchievements  = 3
)

var (
	yearsPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\+?\s*(?:years?|yrs?)\s*(?:of\s+)?(?:experience|exp)\b`),
		regexp.MustCompile(`(?:experience|exp)\s*(?:of\s+)?(\d+)\+?\s*(?:years?|yrs?)\b`),
	}
	achievementMarker = regexp.MustCompile(`%|\$\d+|\b(?:` +
		strings.Join(vocab.MustGet(vocab.SectionsFile, "achievement_verbs"), "|") + `)\b`)
)

// Experience scores stated years of experience and quantified achievements.
func Experience(text string) types.SectionScore {
	lower := strings.ToLower(text)
	score := experienceBase

	years := maxYears(lower)
	if years > 0 {
		score += min(years*perYearBonus, maxYearsBonus)
	}

	achievements := len(achievementMarker.FindAllStringIndex(lower, -1))
	if achievements > minAchievements {
		score += achievementBonus
	}

	feedback := "Experience section looks strong"
	switch {
	case years == 0:
		feedback = "State your years of experience explicitly"
	case achievements <= minAchievements:
		feedback = "Quantify more of your achievements"
	}

	return types.SectionScore{
		Score:    clamp(score),
		Feedback: feedback,
		Experience: &types.ExperienceDetails{
			YearsFound:         years,
			RelevantExperience: years > 0,
			AchievementCount:   achievements,
		},
	}
}

// maxYears returns the largest year count stated in text, or 0.
func maxYears(lower string) int {
	best := 0
	for _, pattern := range yearsPatterns {
		for _, m := range pattern.FindAllStringSubmatch(lower, -1) {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			best = max(best, n)
		}
	}
	return best
}
