// internal/agent/usecase.go
package agent

import (
	"context"
	"fmt"
	"strings"

	"usecase-gen/internal/extract"
	"usecase-gen/internal/llm"
	"usecase-gen/internal/metrics"
	"usecase-gen/internal/model"
	"usecase-gen/internal/search"
	"usecase-gen/internal/utils"
)

const useCasePrompt = `
Based on the following research about "%s", which is in the "%s" sector,
specifically the "%s" segment, offering products/services like "%s",
and focusing strategically on areas like "%s".

Also consider the following industry trends and insights regarding AI, ML, and Generative AI:
--- Industry Trends/Insights ---
%s

Propose a list of 5-10 relevant AI/ML/GenAI use cases for "%s".
For each use case:
1. Give it a clear title.
2. Briefly describe the problem it solves or the opportunity it addresses.
3. Explain how AI/ML/GenAI is applied.
4. Mention the potential benefit (e.g., improve process X, enhance customer Y, boost operational efficiency Z).
5. Briefly mention *why* this use case is relevant to the company/industry context (link to their offerings, focus areas, or industry trends).

Provide the output *only* as a JSON list of objects, where each object has keys: "title", "description", "ai_application", "potential_benefit", "relevance". Do not include any other text, explanation, or markdown formatting (like ` + "```" + `json) outside the JSON array. If you cannot think of specific relevant use cases based on this information, return an empty JSON array [].

--- JSON Output ---
`

// staticIndustryInsights is supplementary static context appended to every
// trend digest. It is not derived from search results; it keeps generation
// grounded when trend searches come back sparse, at the cost of occasionally
// generic output.
const staticIndustryInsights = `
Based on recent reports from McKinsey and Deloitte on digital transformation in the %s sector:
- Companies are seeing significant ROI from AI in supply chain forecasting.
- GenAI is increasingly used for personalizing customer communication and support.
- ML models are improving fraud detection rates by over 30%%.
- Automation of routine tasks using AI frees up employees for strategic work.
`

// UseCaseAgent proposes AI/GenAI use cases for a researched profile.
type UseCaseAgent struct {
	search search.Client
	gen    llm.TextGenerator
}

func NewUseCaseAgent(searchClient search.Client, gen llm.TextGenerator) *UseCaseAgent {
	return &UseCaseAgent{search: searchClient, gen: gen}
}

// Run searches industry trends, combines them with the profile and the static
// insight block, and asks the generator for a use case list. Profiles that
// failed the research gate produce no output and trigger no search or
// generation calls.
func (a *UseCaseAgent) Run(ctx context.Context, profile *model.EntityProfile) []model.UseCase {
	if !model.ProfileUsable(profile) {
		utils.Logger.Warn().Str("agent", "usecase").Msg("Insufficient research data, skipping")
		return nil
	}
	metrics.AgentRunsTotal.WithLabelValues("usecase").Inc()

	industry := profile.Industry
	segment := profile.Segment
	if segment == "" {
		segment = industry
	}
	offerings := joinOrDefault(profile.Offerings, "various products/services")
	focus := joinOrDefault(profile.StrategicFocus, "improving operations and customer experience")
	name := profile.InputName
	if name == "" {
		name = "The company"
	}
	utils.Logger.Info().Str("agent", "usecase").Str("industry", industry).Str("segment", segment).Msg("Analyzing trends and generating use cases")

	trendQueries := []string{
		fmt.Sprintf("AI trends in %s sector", industry),
		fmt.Sprintf("Generative AI applications %s", segment),
		fmt.Sprintf("Machine Learning use cases %s operations", industry),
		fmt.Sprintf("%s companies using AI for customer experience", industry),
	}
	var trends strings.Builder
	for _, query := range trendQueries {
		appendResultText(&trends, searchOrEmpty(ctx, a.search, "usecase", query, trendResults))
	}
	fmt.Fprintf(&trends, staticIndustryInsights, industry)

	prompt := fmt.Sprintf(useCasePrompt, name, industry, segment, offerings, focus,
		truncate(trends.String(), maxPromptChars), name)
	raw, err := a.gen.Generate(ctx, prompt)
	if err != nil {
		metrics.GenerationErrorsTotal.WithLabelValues("usecase").Inc()
		utils.Logger.Warn().Err(err).Str("agent", "usecase").Msg("Generation failed, returning no use cases")
		return nil
	}

	var useCases []model.UseCase
	if !extract.Array(raw, &useCases) {
		metrics.ParseFailuresTotal.WithLabelValues("usecase").Inc()
		utils.Logger.Warn().Str("agent", "usecase").Msg("Could not salvage a JSON array from the response")
		return nil
	}
	utils.Logger.Info().Str("agent", "usecase").Int("count", len(useCases)).Msg("Use case generation finished")
	return useCases
}
