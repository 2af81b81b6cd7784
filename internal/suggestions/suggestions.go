// Package suggestions turns analyzer output into a ranked list of improvement hints.
package suggestions

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// MaxSuggestions caps the returned list.
const MaxSuggestions = 8

const (
	lowDensityPercentage = 40
	maxMissingNamed      = 3
	weakSectionScore     = 70
)

// Input is everything the rules look at.
type Input struct {
	Skills   types.SkillMatchResult
	Sections types.Sections
}

// rule emits at most one suggestion when its predicate holds.
type rule struct {
	category string
	priority int
	applies  func(in Input) bool
	build    func(in Input) (text, impact string)
}

// sectionAdvice is the fixed text for a weak section.
type sectionAdvice struct {
	priority int
	text     string
	impact   string
}

var sectionAdvices = map[string]sectionAdvice{
	types.SectionFormatting: {
		priority: 3,
		text:     "Improve resume structure with clear section headers and bullet points",
		impact:   "Makes your resume easier to scan for recruiters and ATS",
	},
	types.SectionKeywords: {
		priority: 4,
		text:     "Mirror more of the job description's wording in your experience",
		impact:   "Raises keyword density and ATS ranking",
	},
	types.SectionExperience: {
		priority: 3,
		text:     "State your years of experience and quantify achievements with numbers",
		impact:   "Shows the scale of your impact",
	},
	types.SectionEducation: {
		priority: 3,
		text:     "List your degrees, certifications and relevant field of study",
		impact:   "Helps you pass education filters",
	},
	types.SectionSkills: {
		priority: 3,
		text:     "Add a skills section covering both technical and soft skills",
		impact:   "Improves skill coverage for automated screening",
	},
}

func rules() []rule {
	list := []rule{
		{
			category: types.SectionKeywords,
			priority: 5,
			applies: func(in Input) bool {
				density := in.Sections.Keywords.Keywords
				return density == nil || density.Percentage < lowDensityPercentage
			},
			build: func(Input) (string, string) {
				return "Include more keywords from the job description in your resume",
					"Can significantly improve ATS matching"
			},
		},
		{
			category: types.SectionSkills,
			priority: 4,
			applies:  func(in Input) bool { return len(in.Skills.Missing) > maxMissingNamed },
			build: func(in Input) (string, string) {
				names := make([]string, 0, maxMissingNamed)
				for _, skill := range in.Skills.Missing[:maxMissingNamed] {
					names = append(names, skill.Name)
				}
				return fmt.Sprintf("Consider adding these skills: %s", strings.Join(names, ", ")),
					"Closes the most important skill gaps"
			},
		},
	}

	for _, section := range (types.Sections{}).Ordered() {
		name := section.Name
		advice := sectionAdvices[name]
		list = append(list, rule{
			category: name,
			priority: advice.priority,
			applies: func(in Input) bool {
				return sectionScore(in.Sections, name) < weakSectionScore
			},
			build: func(Input) (string, string) { return advice.text, advice.impact },
		})
	}
	return list
}

var ruleTable = rules()

// Generate evaluates the rules in order and returns the suggestions sorted by
// priority (descending), capped at MaxSuggestions.
func Generate(in Input) []types.Suggestion {
	out := make([]types.Suggestion, 0, len(ruleTable))
	for _, r := range ruleTable {
		if !r.applies(in) {
			continue
		}
		text, impact := r.build(in)
		out = append(out, types.Suggestion{
			Category:          r.category,
			Priority:          r.priority,
			Text:              text,
			ImpactDescription: impact,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})

	if len(out) > MaxSuggestions {
		out = out[:MaxSuggestions]
	}
	return out
}

func sectionScore(s types.Sections, name string) int {
	for _, section := range s.Ordered() {
		if section.Name == name {
			return section.Score.Score
		}
	}
	return 0
}
