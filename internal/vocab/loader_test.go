package vocab

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_TechnicalSkills(t *testing.T) {
	ClearCache()

	list, err := Get(SkillsFile, "technical")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(list), 55)
	assert.Contains(t, list, "kubernetes")
	assert.Contains(t, list, "machine learning")
}

func TestGet_SoftSkills(t *testing.T) {
	ClearCache()

	list, err := Get(SkillsFile, "soft")
	require.NoError(t, err)
	assert.Len(t, list, 19)
	assert.Contains(t, list, "leadership")
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "technical")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read vocabulary file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get(SkillsFile, "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() {
		MustGet("nonexistent.json", "technical")
	})
}

func TestSet(t *testing.T) {
	set := Set(StopwordsFile, "density")
	_, ok := set["with"]
	assert.True(t, ok)
	_, ok = set["python"]
	assert.False(t, ok)
}

func TestVocabulary_EntriesAreNormalized(t *testing.T) {
	// Entries are matched against normalized text, so they must already be
	// lowercase words separated by single spaces.
	tables := map[string][]string{
		SkillsFile:    {"technical", "soft"},
		StopwordsFile: {"terms", "density"},
		SectionsFile:  {"relevant_fields", "section_technical", "section_soft", "achievement_verbs"},
	}
	for file, keys := range tables {
		for _, key := range keys {
			for _, entry := range MustGet(file, key) {
				assert.Equal(t, strings.ToLower(entry), entry, "%s/%s: %q", file, key, entry)
				assert.Equal(t, strings.Join(strings.Fields(entry), " "), entry, "%s/%s: %q", file, key, entry)
				for _, r := range entry {
					ok := r == ' ' || r == '_' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
					assert.True(t, ok, "%s/%s: %q has non-word rune %q", file, key, entry, r)
				}
			}
		}
	}
}

func TestVocabulary_NoDuplicateSkills(t *testing.T) {
	seen := make(map[string]bool)
	for _, key := range []string{"technical", "soft"} {
		for _, entry := range MustGet(SkillsFile, key) {
			assert.False(t, seen[entry], "duplicate skill %q", entry)
			seen[entry] = true
		}
	}
}
