package llm

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"

	"usecase-gen/internal/metrics"
)

func TestRecordGeminiTokenUsage(t *testing.T) {
	promptBefore := testutil.ToFloat64(metrics.LLMTokensTotal.WithLabelValues("prompt"))
	completionBefore := testutil.ToFloat64(metrics.LLMTokensTotal.WithLabelValues("completion"))

	recordGeminiTokenUsage(&genai.GenerateContentResponse{
		UsageMetadata: &genai.GenerateContentResponseUsageMetadata{
			PromptTokenCount:     120,
			CandidatesTokenCount: 45,
		},
	})

	assert.Equal(t, promptBefore+120, testutil.ToFloat64(metrics.LLMTokensTotal.WithLabelValues("prompt")))
	assert.Equal(t, completionBefore+45, testutil.ToFloat64(metrics.LLMTokensTotal.WithLabelValues("completion")))
}

func TestRecordGeminiTokenUsageNilSafe(t *testing.T) {
	before := testutil.ToFloat64(metrics.LLMTokensTotal.WithLabelValues("prompt"))
	recordGeminiTokenUsage(nil)
	recordGeminiTokenUsage(&genai.GenerateContentResponse{})
	assert.Equal(t, before, testutil.ToFloat64(metrics.LLMTokensTotal.WithLabelValues("prompt")))
}
