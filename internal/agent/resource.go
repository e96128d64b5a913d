// internal/agent/resource.go
package agent

import (
	"context"
	"fmt"

	"usecase-gen/internal/metrics"
	"usecase-gen/internal/model"
	"usecase-gen/internal/search"
	"usecase-gen/internal/utils"
)

// ResourceAgent collects dataset and code links for generated use cases. It is
// the only agent that never calls the generator.
type ResourceAgent struct {
	search search.Client
}

func NewResourceAgent(searchClient search.Client) *ResourceAgent {
	return &ResourceAgent{search: searchClient}
}

// Run issues two site-scoped queries per use case and aggregates the hits,
// keyed by use case title. Links are deduplicated per use case, first
// occurrence wins. Duplicate titles overwrite the earlier key's list; titles
// are effectively unique within one run.
func (a *ResourceAgent) Run(ctx context.Context, useCases []model.UseCase) model.ResourceMap {
	collected := model.ResourceMap{}
	if len(useCases) == 0 {
		utils.Logger.Warn().Str("agent", "resource").Msg("No use cases provided, skipping")
		return collected
	}
	metrics.AgentRunsTotal.WithLabelValues("resource").Inc()
	utils.Logger.Info().Str("agent", "resource").Int("use_cases", len(useCases)).Msg("Collecting resources")

	for _, uc := range useCases {
		title := uc.Title
		if title == "" {
			title = "Untitled Use Case"
		}
		collected[title] = []model.ResourceLink{}

		queries := []string{
			fmt.Sprintf("%s dataset site:kaggle.com OR site:huggingface.co/datasets OR site:github.com", title),
			fmt.Sprintf("%s github code OR example site:github.com", title),
		}
		for _, query := range queries {
			for _, item := range searchOrEmpty(ctx, a.search, "resource", query, resourceResults) {
				if item.Link == "" || hasLink(collected[title], item.Link) {
					continue
				}
				collected[title] = append(collected[title], model.ResourceLink{
					Title:   item.Title,
					Link:    item.Link,
					Snippet: item.Snippet,
				})
			}
		}
	}
	return collected
}

func hasLink(links []model.ResourceLink, link string) bool {
	for _, l := range links {
		if l.Link == link {
			return true
		}
	}
	return false
}
