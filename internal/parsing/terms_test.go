package parsing

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTerms_OrderedByImportance(t *testing.T) {
	text := Normalize("Kubernetes and Go. Kubernetes clusters run Go services; more Kubernetes.")

	terms := ExtractTerms(text)
	require.NotEmpty(t, terms)

	assert.Equal(t, "kubernetes", terms[0].Text)
	assert.Equal(t, 3, terms[0].Frequency)
	assert.InDelta(t, 3*0.30685, terms[0].Importance, 0.001)

	for i := 1; i < len(terms); i++ {
		assert.GreaterOrEqual(t, terms[i-1].Importance, terms[i].Importance)
	}
}

func TestExtractTerms_FiltersShortTokensAndStopwords(t *testing.T) {
	terms := ExtractTerms(Normalize("Go is an ok language and the best for APIs"))

	texts := make([]string, 0, len(terms))
	for _, term := range terms {
		texts = append(texts, term.Text)
	}

	assert.NotContains(t, texts, "go")
	assert.NotContains(t, texts, "ok")
	assert.NotContains(t, texts, "and")
	assert.NotContains(t, texts, "the")
	assert.Contains(t, texts, "language")
	assert.Contains(t, texts, "apis")
}

func TestExtractTerms_TiesKeepFirstAppearance(t *testing.T) {
	terms := ExtractTerms("zebra apple mango")
	require.Len(t, terms, 3)
	assert.Equal(t, "zebra", terms[0].Text)
	assert.Equal(t, "apple", terms[1].Text)
	assert.Equal(t, "mango", terms[2].Text)
}

func TestExtractTerms_CappedAtFifty(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 80; i++ {
		sb.WriteString(fmt.Sprintf("word%03d ", i))
	}

	terms := ExtractTerms(Normalize(sb.String()))
	assert.Len(t, terms, MaxTerms)
	assert.Equal(t, "word000", terms[0].Text)
}

func TestExtractTerms_Empty(t *testing.T) {
	assert.Empty(t, ExtractTerms(""))
}

func TestExtractTerms_Deterministic(t *testing.T) {
	text := Normalize("Designed distributed systems. Led distributed teams. Shipped systems daily.")
	assert.Equal(t, ExtractTerms(text), ExtractTerms(text))
}

func TestImportance(t *testing.T) {
	assert.InDelta(t, 0.30685, Importance(1), 0.0001)
	assert.InDelta(t, 0.0, Importance(0), 0.0001)
	assert.Greater(t, Importance(1), minImportance)
}
