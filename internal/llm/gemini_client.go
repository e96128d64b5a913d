package llm

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"usecase-gen/internal/metrics"
	"usecase-gen/internal/utils"
)

// GeminiClient generates text through the Gemini API. The generation settings
// match what the proposal prompts were tuned against.
type GeminiClient struct {
	client *genai.Client
	model  string
	config *genai.GenerateContentConfig
}

// NewGeminiClient constructs a generator backed by the given Gemini model.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("gemini: API key is required")
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &GeminiClient{
		client: client,
		model:  model,
		config: &genai.GenerateContentConfig{
			Temperature:     genai.Ptr[float32](0.5),
			TopP:            genai.Ptr[float32](0.95),
			TopK:            genai.Ptr[float32](64),
			MaxOutputTokens: 8192,
		},
	}, nil
}

func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	utils.Logger.Debug().Str("module", "llm").Str("model", c.model).Int("prompt_chars", len(prompt)).Msg("Generating response with Gemini")

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), c.config)
	if err != nil {
		utils.Logger.Error().Err(err).Str("module", "llm").Msg("Failed to generate response from Gemini")
		return "", &GenerationError{Provider: "gemini", Err: err}
	}
	recordGeminiTokenUsage(resp)

	text := resp.Text()
	if text == "" {
		return "", &GenerationError{Provider: "gemini", Err: errors.New("empty response")}
	}
	return text, nil
}

func recordGeminiTokenUsage(resp *genai.GenerateContentResponse) {
	if resp == nil || resp.UsageMetadata == nil {
		return
	}
	metrics.LLMTokensTotal.WithLabelValues("prompt").Add(float64(resp.UsageMetadata.PromptTokenCount))
	metrics.LLMTokensTotal.WithLabelValues("completion").Add(float64(resp.UsageMetadata.CandidatesTokenCount))
}
