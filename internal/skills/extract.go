// Package skills finds vocabulary skills in normalized text and compares résumé skills with job skills.
package skills

import (
	"regexp"
	"sort"
	"sync"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocab"
)

// Per-occurrence confidence weights.
const (
	technicalWeight = 0.3
	softWeight      = 0.2
)

// entry is one compiled vocabulary skill.
type entry struct {
	name     string
	category types.SkillCategory
	pattern  *regexp.Regexp
}

var (
	entries     []entry
	entriesOnce sync.Once
)

// vocabulary compiles the embedded skill tables once: technical entries first,
// then soft ones, each in table order.
func vocabulary() []entry {
	entriesOnce.Do(func() {
		add := func(key string, category types.SkillCategory) {
			for _, name := range vocab.MustGet(vocab.SkillsFile, key) {
				entries = append(entries, entry{
					name:     name,
					category: category,
					pattern:  regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`),
				})
			}
		}
		add("technical", types.CategoryTechnical)
		add("soft", types.CategorySoft)
	})
	return entries
}

// Confidence returns min(frequency*weight, 1) for a skill category.
func Confidence(frequency int, category types.SkillCategory) float64 {
	weight := technicalWeight
	if category == types.CategorySoft {
		weight = softWeight
	}
	return min(float64(frequency)*weight, 1.0)
}

// ExtractSkills counts whole-word occurrences of every vocabulary skill in
// normalized text. Skills that never occur are omitted. The result is sorted
// by confidence, descending; equal confidences keep vocabulary order.
func ExtractSkills(normalized string) []types.Skill {
	if normalized == "" {
		return []types.Skill{}
	}

	found := make([]types.Skill, 0)
	for _, e := range vocabulary() {
		freq := len(e.pattern.FindAllStringIndex(normalized, -1))
		if freq == 0 {
			continue
		}
		found = append(found, types.Skill{
			Name:       e.name,
			Category:   e.category,
			Frequency:  freq,
			Confidence: Confidence(freq, e.category),
		})
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Confidence > found[j].Confidence
	})
	return found
}
