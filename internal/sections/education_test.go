package sections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEducation_Bachelor(t *testing.T) {
	got := Education("Bachelor of Science in Computer Science")

	require.NotNil(t, got.Education)
	assert.Equal(t, 95, got.Score)
	assert.True(t, got.Education.DegreeFound)
	assert.True(t, got.Education.RelevantDegree)
	assert.Equal(t, []string{"bachelor"}, got.Education.DegreeLevels)
}

func TestEducation_FamiliesAreAdditiveAndCapped(t *testing.T) {
	got := Education("PhD and Master's in Software Engineering")

	assert.Equal(t, 100, got.Score)
	assert.Equal(t, []string{"master", "doctorate"}, got.Education.DegreeLevels)
}

func TestEducation_NoDegree(t *testing.T) {
	got := Education("Self taught")

	assert.Equal(t, 60, got.Score)
	assert.False(t, got.Education.DegreeFound)
	assert.False(t, got.Education.RelevantDegree)
	assert.Empty(t, got.Education.DegreeLevels)
}

func TestEducation_BareItIsNotAField(t *testing.T) {
	got := Education("I did it and shipped it")
	assert.Equal(t, 60, got.Score)
	assert.False(t, got.Education.RelevantDegree)
}

func TestEducation_Certificate(t *testing.T) {
	got := Education("Diploma in Information Technology")
	assert.Equal(t, 95, got.Score)
	assert.Equal(t, []string{"associate"}, got.Education.DegreeLevels)
}
