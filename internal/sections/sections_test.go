package sections

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func longResume() string {
	return "WORK EXPERIENCE\n- Built backend services\n" + strings.Repeat("delivered reliable systems ", 45)
}

func TestHasHeader(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"plain header", "EXPERIENCE\nstuff", true},
		{"header with colon", "summary\nSKILLS:\nGo", true},
		{"header with ampersand", "AWARDS & HONORS", true},
		{"crlf line ending", "EDUCATION\r\nBSc", true},
		{"title case", "Experience\nstuff", false},
		{"too short", "IT\nstuff", false},
		{"mixed line", "EXPERIENCE at Acme", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasHeader(tt.text))
		})
	}
}

func TestAnalyze_ReturnsAllSections(t *testing.T) {
	s := Analyze(longResume(), "Backend engineer building reliable systems")

	assert.Equal(t, 80, s.Formatting.Score)
	require.NotNil(t, s.Keywords.Keywords)
	require.NotNil(t, s.Experience.Experience)
	require.NotNil(t, s.Education.Education)
	require.NotNil(t, s.Skills.Skills)
}

func TestAverage(t *testing.T) {
	s := Analyze(longResume(), "")
	want := float64(s.Formatting.Score+s.Keywords.Score+s.Experience.Score+s.Education.Score+s.Skills.Score) / 5
	assert.InDelta(t, want, Average(s), 0.0001)
}
