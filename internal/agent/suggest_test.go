package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usecase-gen/internal/model"
)

const suggestionsJSON = `[
  {"title": "Policy Chatbot", "application": "Internal knowledge base assistant", "potential_benefit": "Faster answers", "fit_area": "HR"},
  {"title": "Report Writer", "application": "Summarize performance data", "potential_benefit": "Saves analyst time", "fit_area": "Operations"}
]`

func TestSuggestSuccess(t *testing.T) {
	g := &scriptedGen{responses: []string{suggestionsJSON}}

	suggestions := NewSuggestionAgent(g).Run(context.Background(), usableProfile())
	require.Len(t, suggestions, 2)
	assert.Equal(t, "Policy Chatbot", suggestions[0].Title)

	require.Len(t, g.prompts, 1)
	assert.Contains(t, g.prompts[0], "Acme Bank")
	assert.Contains(t, g.prompts[0], "Banking")
}

func TestSuggestGateOnErrorMarker(t *testing.T) {
	g := &scriptedGen{responses: []string{suggestionsJSON}}
	profile := &model.EntityProfile{Industry: "Error: timeout"}

	suggestions := NewSuggestionAgent(g).Run(context.Background(), profile)
	assert.Empty(t, suggestions)
	// The gate skips generation entirely, without the fallback.
	assert.Empty(t, g.prompts)
}

func TestSuggestFallbackOnUnparseableText(t *testing.T) {
	g := &scriptedGen{responses: []string{"definitely not json"}}

	suggestions := NewSuggestionAgent(g).Run(context.Background(), usableProfile())
	require.Len(t, suggestions, 1)
	assert.Equal(t, fallbackSuggestion, suggestions[0])
}

func TestSuggestFallbackOnGenerationError(t *testing.T) {
	g := &scriptedGen{err: errors.New("quota")}

	suggestions := NewSuggestionAgent(g).Run(context.Background(), usableProfile())
	require.Len(t, suggestions, 1)
	assert.Equal(t, fallbackSuggestion, suggestions[0])
}

func TestSuggestFallbackOnPartiallyDecodableArray(t *testing.T) {
	// A valid JSON array with one type-mismatched element fails extraction as
	// a whole; the fallback must replace it, not a half-decoded list.
	g := &scriptedGen{responses: []string{`[{"title": "Real", "application": "a", "potential_benefit": "b", "fit_area": "c"}, "stray string"]`}}

	suggestions := NewSuggestionAgent(g).Run(context.Background(), usableProfile())
	require.Len(t, suggestions, 1)
	assert.Equal(t, fallbackSuggestion, suggestions[0])
}

func TestSuggestFallbackOnEmptyArray(t *testing.T) {
	g := &scriptedGen{responses: []string{"[]"}}

	suggestions := NewSuggestionAgent(g).Run(context.Background(), usableProfile())
	require.Len(t, suggestions, 1)
	assert.Equal(t, fallbackSuggestion, suggestions[0])
}
