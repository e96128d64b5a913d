// internal/agent/orchestrator.go
// Orchestrator: sequences the four agents over shared search and generation
// clients. Research failure short-circuits the run; once research passes the
// gate every remaining stage runs and degrades independently.
package agent

import (
	"context"

	"usecase-gen/internal/llm"
	"usecase-gen/internal/model"
	"usecase-gen/internal/search"
	"usecase-gen/internal/utils"
)

type Orchestrator struct {
	research    *ResearchAgent
	useCases    *UseCaseAgent
	resources   *ResourceAgent
	suggestions *SuggestionAgent
}

// NewOrchestrator wires the four agents to one search client and one text
// generator. Clients are constructed once by the caller and reused across
// runs.
func NewOrchestrator(searchClient search.Client, gen llm.TextGenerator) *Orchestrator {
	return &Orchestrator{
		research:    NewResearchAgent(searchClient, gen),
		useCases:    NewUseCaseAgent(searchClient, gen),
		resources:   NewResourceAgent(searchClient),
		suggestions: NewSuggestionAgent(gen),
	}
}

// Run executes the pipeline for one subject. It never returns an error: every
// failure state is encoded in the bundle's Status, marker fields and empty
// collections.
func (o *Orchestrator) Run(ctx context.Context, subject string) model.ProposalBundle {
	utils.Logger.Info().Str("subject", subject).Msg("Generating proposal")

	outcome := o.research.Run(ctx, subject)
	if !outcome.OK() {
		utils.Logger.Error().Str("reason", outcome.Reason).Msg("Research failed or returned insufficient data, cannot generate use cases")
		return model.ProposalBundle{
			UseCases:      []model.UseCase{},
			ResourceLinks: model.ResourceMap{},
			Suggestions:   []model.GenAISuggestion{},
			ResearchData:  outcome.Profile,
			Status:        model.StatusFailedResearch,
		}
	}

	useCases := o.useCases.Run(ctx, outcome.Profile)
	resourceLinks := o.resources.Run(ctx, useCases)
	suggestions := o.suggestions.Run(ctx, outcome.Profile)

	utils.Logger.Info().Int("use_cases", len(useCases)).Int("suggestions", len(suggestions)).Msg("Proposal generation finished")
	return model.ProposalBundle{
		UseCases:      useCases,
		ResourceLinks: resourceLinks,
		Suggestions:   suggestions,
		ResearchData:  outcome.Profile,
		Status:        model.StatusSuccess,
	}
}
