package llm

import (
	"context"
	"fmt"
)

// TextGenerator defines the interface for interacting with different LLM providers.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GenerationError wraps a provider failure (transport, auth, quota). Agents
// catch it and degrade to marker fields or empty output, never propagate.
type GenerationError struct {
	Provider string
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s: generation failed: %v", e.Provider, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
