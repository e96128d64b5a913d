// internal/agent/agent.go
// Shared helpers for the pipeline agents. Every agent is a single-responsibility
// stage combining zero or more search calls with at most one generation call;
// the stages run strictly sequentially.
package agent

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"usecase-gen/internal/metrics"
	"usecase-gen/internal/model"
	"usecase-gen/internal/search"
	"usecase-gen/internal/utils"
)

const (
	// maxPromptChars bounds the aggregated search text fed to the generator.
	maxPromptChars = 7000

	researchResults = 5
	trendResults    = 3
	resourceResults = 2
)

// searchOrEmpty degrades a failed search call to zero results for that query
// so the pipeline keeps running.
func searchOrEmpty(ctx context.Context, c search.Client, agentName, query string, maxResults int) []model.SearchResultItem {
	metrics.SearchQueriesTotal.WithLabelValues(agentName).Inc()
	items, err := c.Search(ctx, query, maxResults)
	if err != nil {
		metrics.SearchErrorsTotal.WithLabelValues(agentName).Inc()
		utils.Logger.Warn().Err(err).Str("agent", agentName).Str("query", query).Msg("Search failed, continuing with no results")
		return nil
	}
	return items
}

// appendResultText formats search hits the way every generation prompt
// consumes them.
func appendResultText(b *strings.Builder, items []model.SearchResultItem) {
	for _, item := range items {
		fmt.Fprintf(b, "Title: %s\nSnippet: %s\nURL: %s\n\n", item.Title, item.Snippet, item.Link)
	}
}

// truncate cuts s to at most n bytes without splitting a multi-byte rune,
// so the generator never sees an invalid UTF-8 tail.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// joinOrDefault joins list values for prompt interpolation, substituting a
// generic phrase when research produced nothing for the field.
func joinOrDefault(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}
