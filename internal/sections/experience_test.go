package sections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExperience(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		score        int
		years        int
		achievements int
	}{
		{"nothing stated", "Worked on things", 70, 0, 0},
		{"years of experience", "5 years of experience in Go", 95, 5, 0},
		{"experience of years", "Experience of 2+ years", 80, 2, 0},
		{"largest count wins", "3 yrs exp in Java, 7 years experience overall", 95, 7, 0},
		{"achievements", "Increased revenue 20%, reduced costs by $5000, improved latency, grew team", 85, 0, 6},
		{"three achievements get no bonus", "Increased sales, improved uptime, reduced toil", 70, 0, 3},
		{"capped", "10 years of experience. Increased sales 30%, improved uptime, generated $200", 100, 10, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Experience(tt.text)
			require.NotNil(t, got.Experience)
			assert.Equal(t, tt.score, got.Score)
			assert.Equal(t, tt.years, got.Experience.YearsFound)
			assert.Equal(t, tt.years > 0, got.Experience.RelevantExperience)
			assert.Equal(t, tt.achievements, got.Experience.AchievementCount)
		})
	}
}
