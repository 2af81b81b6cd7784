package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"lowercase", "Senior GO Engineer", "senior go engineer"},
		{"punctuation", "Go, Python; and C++!", "go python and c"},
		{"collapses whitespace", "  a \t\n  b   ", "a b"},
		{"keeps digits and underscore", "node_js 2019-2021", "node_js 2019 2021"},
		{"drops non ascii letters", "résumé", "r sum"},
		{"only punctuation", "--- *** •••", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Built REST APIs in Go & Python (5 years).",
		"• Led a team of 8 engineers\n• Reduced costs by 30%",
		"",
		"ALL CAPS HEADER\nmixed Case body",
	}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"go", "python", "docker"}, Tokenize("go python docker"))
	assert.Empty(t, Tokenize(""))
}
