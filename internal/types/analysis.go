package types

// SkillCategory classifies a vocabulary skill.
type SkillCategory string

const (
	// CategoryTechnical covers languages, frameworks, databases, cloud and tooling.
	CategoryTechnical SkillCategory = "technical"
	// CategorySoft covers interpersonal and organisational skills.
	CategorySoft SkillCategory = "soft"
)

// Term is a salient word extracted from a single document.
type Term struct {
	Text       string  `json:"text"`
	Importance float64 `json:"importance"`
	Frequency  int     `json:"frequency"`
}

// Skill is a vocabulary entry found in a document.
type Skill struct {
	Name       string        `json:"name"`
	Category   SkillCategory `json:"category"`
	Frequency  int           `json:"frequency"`
	Confidence float64       `json:"confidence"` // 0-1
}

// KeywordDetail records whether one job term was found in the résumé.
type KeywordDetail struct {
	Term       string  `json:"term"`
	Found      bool    `json:"found"`
	Frequency  int     `json:"frequency"`
	Importance float64 `json:"importance"`
}

// KeywordMatchResult summarises job terms matched against résumé terms.
type KeywordMatchResult struct {
	TotalJobTerms int             `json:"totalJobTerms"`
	MatchedCount  int             `json:"matchedCount"`
	Percentage    int             `json:"percentage"` // 0-100
	Details       []KeywordDetail `json:"details"`
}

// MatchedSkill is a résumé skill that the job also asks for.
type MatchedSkill struct {
	Name       string        `json:"name"`
	Confidence float64       `json:"confidence"`
	Category   SkillCategory `json:"category"`
}

// MissingSkill is a job skill absent from the résumé.
type MissingSkill struct {
	Name       string        `json:"name"`
	Importance float64       `json:"importance"`
	Category   SkillCategory `json:"category"`
}

// SkillMatchResult holds both independently derived skill lists.
type SkillMatchResult struct {
	Matched []MatchedSkill `json:"matched"` // at most 15
	Missing []MissingSkill `json:"missing"` // at most 10
}

// Section names, in the order they are reported.
const (
	SectionFormatting = "formatting"
	SectionKeywords   = "keywords"
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionSkills     = "skills"
)

// KeywordDensity is the metadata of the keywords section.
type KeywordDensity struct {
	MatchedCount  int `json:"matchedCount"`
	TotalKeywords int `json:"totalKeywords"`
	Percentage    int `json:"percentage"`
}

// ExperienceDetails is the metadata of the experience section.
type ExperienceDetails struct {
	YearsFound         int  `json:"yearsFound"`
	RelevantExperience bool `json:"relevantExperience"`
	AchievementCount   int  `json:"achievementCount"`
}

// EducationDetails is the metadata of the education section.
type EducationDetails struct {
	DegreeFound    bool     `json:"degreeFound"`
	RelevantDegree bool     `json:"relevantDegree"`
	DegreeLevels   []string `json:"degreeLevels"`
}

// SkillsSectionDetails is the metadata of the skills section.
type SkillsSectionDetails struct {
	TechnicalHits int `json:"technicalHits"`
	SoftHits      int `json:"softHits"`
}

// SectionScore is one heuristic sub-score. At most one of the metadata
// pointers is set, depending on the section.
type SectionScore struct {
	Score      int                   `json:"score"` // 0-100
	Feedback   string                `json:"feedback"`
	Issues     []string              `json:"issues,omitempty"`
	Keywords   *KeywordDensity       `json:"keywordDensity,omitempty"`
	Experience *ExperienceDetails    `json:"experienceDetails,omitempty"`
	Education  *EducationDetails     `json:"educationDetails,omitempty"`
	Skills     *SkillsSectionDetails `json:"skillsDetails,omitempty"`
}

// Sections groups the five section scores.
type Sections struct {
	Formatting SectionScore `json:"formatting"`
	Keywords   SectionScore `json:"keywords"`
	Experience SectionScore `json:"experience"`
	Education  SectionScore `json:"education"`
	Skills     SectionScore `json:"skills"`
}

// NamedSection pairs a section score with its name.
type NamedSection struct {
	Name  string
	Score SectionScore
}

// Ordered returns the sections in reporting order.
func (s Sections) Ordered() []NamedSection {
	return []NamedSection{
		{Name: SectionFormatting, Score: s.Formatting},
		{Name: SectionKeywords, Score: s.Keywords},
		{Name: SectionExperience, Score: s.Experience},
		{Name: SectionEducation, Score: s.Education},
		{Name: SectionSkills, Score: s.Skills},
	}
}

// Suggestion is one ranked improvement hint.
type Suggestion struct {
	Category          string `json:"category"`
	Priority          int    `json:"priority"` // 1-5
	Text              string `json:"text"`
	ImpactDescription string `json:"impactDescription"`
}

// AnalysisResult is the full output of one résumé/job comparison.
type AnalysisResult struct {
	OverallScore          int                `json:"overallScore"`
	MatchedSkills         []MatchedSkill     `json:"matchedSkills"`
	MissingSkills         []MissingSkill     `json:"missingSkills"`
	KeywordMatches        KeywordMatchResult `json:"keywordMatches"`
	Sections              Sections           `json:"sections"`
	Suggestions           []Suggestion       `json:"suggestions"`
	ReadabilityScore      int                `json:"readabilityScore"`
	ATSCompatibilityScore int                `json:"atsCompatibilityScore"`
	ProcessingTimeMs      int64              `json:"processingTimeMs"`
}
