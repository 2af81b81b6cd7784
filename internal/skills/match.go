package skills

import (
	"sort"

	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// MaxMatched caps the matched list.
	MaxMatched = 15
	// MaxMissing caps the missing list.
	MaxMissing = 10
)

// MatchSkills compares résumé skills with job skills.
// Matched holds résumé skills some job skill Matches; Missing holds job skills
// no résumé skill Matches. Both scans use the same symmetric predicate.
func MatchSkills(resumeSkills, jobSkills []types.Skill) types.SkillMatchResult {
	matched := make([]types.MatchedSkill, 0)
	for _, rs := range resumeSkills {
		if containsMatch(rs.Name, jobSkills) {
			matched = append(matched, types.MatchedSkill{
				Name:       rs.Name,
				Confidence: rs.Confidence,
				Category:   rs.Category,
			})
		}
	}

	missing := make([]types.MissingSkill, 0)
	for _, js := range jobSkills {
		if !containsMatch(js.Name, resumeSkills) {
			missing = append(missing, types.MissingSkill{
				Name:       js.Name,
				Importance: js.Confidence,
				Category:   js.Category,
			})
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Confidence > matched[j].Confidence
	})
	sort.SliceStable(missing, func(i, j int) bool {
		return missing[i].Importance > missing[j].Importance
	})

	if len(matched) > MaxMatched {
		matched = matched[:MaxMatched]
	}
	if len(missing) > MaxMissing {
		missing = missing[:MaxMissing]
	}

	return types.SkillMatchResult{Matched: matched, Missing: missing}
}

func containsMatch(name string, skills []types.Skill) bool {
	for _, s := range skills {
		if matching.Matches(name, s.Name) {
			return true
		}
	}
	return false
}
