package llm

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"

	"usecase-gen/internal/metrics"
	"usecase-gen/internal/utils"
)

// OpenAIClient generates text through the OpenAI chat completion API.
type OpenAIClient struct {
	client      *openai.Client
	model       string
	temperature float32
}

// NewOpenAIClient constructs a generator backed by the given model.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIClient{
		client:      openai.NewClient(apiKey),
		model:       model,
		temperature: 0.5,
	}
}

func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	utils.Logger.Debug().Str("module", "llm").Str("model", c.model).Int("prompt_chars", len(prompt)).Msg("Generating response with OpenAI")

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		utils.Logger.Error().Err(err).Str("module", "llm").Msg("Failed to generate response from OpenAI")
		return "", &GenerationError{Provider: "openai", Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &GenerationError{Provider: "openai", Err: errors.New("no choices returned")}
	}

	metrics.LLMTokensTotal.WithLabelValues("prompt").Add(float64(resp.Usage.PromptTokens))
	metrics.LLMTokensTotal.WithLabelValues("completion").Add(float64(resp.Usage.CompletionTokens))
	return resp.Choices[0].Message.Content, nil
}
