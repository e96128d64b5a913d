// internal/agent/suggest.go
package agent

import (
	"context"
	"fmt"

	"usecase-gen/internal/extract"
	"usecase-gen/internal/llm"
	"usecase-gen/internal/metrics"
	"usecase-gen/internal/model"
	"usecase-gen/internal/utils"
)

const suggestionPrompt = `
Considering "%s" in the "%s" sector, particularly the "%s" segment,
with offerings like "%s" and focusing on "%s".

Propose potential applications for general-purpose Generative AI solutions within this context.
Think about solutions like:
- AI-powered internal document search or knowledge base chatbots.
- Automated report generation or summarization (e.g., market reports, performance summaries).
- AI-powered customer support chatbots or virtual assistants.
- Automated content creation (e.g., marketing copy, product descriptions).

Provide the output *only* as a JSON list of objects, where each object has keys: "title", "application", "potential_benefit", "fit_area". Do not include any other text, explanation, or markdown formatting (like ` + "```" + `json) outside the JSON array.
If you cannot think of specific suggestions relevant to this context, return an empty JSON array [].

--- JSON Output ---
`

// fallbackSuggestion guarantees the agent's output is non-empty whenever the
// research gate passed, even if the model produced nothing usable.
var fallbackSuggestion = model.GenAISuggestion{
	Title:            "Generic AI-Powered Chatbot for FAQs",
	Application:      "Implement a chatbot on the company website or internal portal to answer frequently asked questions.",
	PotentialBenefit: "Improve efficiency by automating responses to common queries, free up staff time, provide 24/7 support.",
	FitArea:          "Customer Service, Internal Operations, HR",
}

// SuggestionAgent proposes general-purpose GenAI applications for a profile.
type SuggestionAgent struct {
	gen llm.TextGenerator
}

func NewSuggestionAgent(gen llm.TextGenerator) *SuggestionAgent {
	return &SuggestionAgent{gen: gen}
}

// Run asks the generator for generic GenAI ideas. Profiles that failed the
// research gate return nothing; past the gate the result always has at least
// one entry.
func (a *SuggestionAgent) Run(ctx context.Context, profile *model.EntityProfile) []model.GenAISuggestion {
	if !model.ProfileUsable(profile) {
		utils.Logger.Warn().Str("agent", "suggest").Msg("Insufficient research data, skipping")
		return nil
	}
	metrics.AgentRunsTotal.WithLabelValues("suggest").Inc()

	segment := profile.Segment
	if segment == "" {
		segment = profile.Industry
	}
	name := profile.InputName
	if name == "" {
		name = "The company"
	}
	prompt := fmt.Sprintf(suggestionPrompt, name, profile.Industry, segment,
		joinOrDefault(profile.Offerings, "various products/services"),
		joinOrDefault(profile.StrategicFocus, "improving operations and customer experience"))

	var suggestions []model.GenAISuggestion
	raw, err := a.gen.Generate(ctx, prompt)
	if err != nil {
		metrics.GenerationErrorsTotal.WithLabelValues("suggest").Inc()
		utils.Logger.Warn().Err(err).Str("agent", "suggest").Msg("Generation failed")
	} else if !extract.Array(raw, &suggestions) {
		metrics.ParseFailuresTotal.WithLabelValues("suggest").Inc()
		utils.Logger.Warn().Str("agent", "suggest").Msg("Could not salvage a JSON array from the response")
	}

	if len(suggestions) == 0 {
		utils.Logger.Info().Str("agent", "suggest").Msg("No specific suggestions from the model, adding the generic fallback")
		suggestions = []model.GenAISuggestion{fallbackSuggestion}
	}
	return suggestions
}
