// internal/agent/research.go
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

const profilePrompt = `
Analyze the following text snippets from web searches about "%s".
Identify and extract the following information:
1. The main industry sector (e.g., Automotive, Finance, Healthcare).
2. The specific segment within that industry (e.g., Commercial Banking, Oncology, E-commerce).
3. Key products, services, or offerings (as a list of strings).
4. Strategic focus areas or priorities (as a list of strings, e.g., improving efficiency, customer experience, expansion).

Provide the output *only* as a structured JSON format with the keys: "industry", "segment", "offerings", "strategic_focus".
If information for a key is not found, use "N/A" or an empty list [] where appropriate (e.g., offerings: []). Do not include any other text, explanation, or markdown formatting (like ` + "```" + `json) outside the JSON object.

--- Text Snippets ---
%s

--- JSON Output ---
`

// parseFailedMarker is left in profile fields when the generator answered but
// no JSON object could be salvaged from the response.
const parseFailedMarker = "Extraction Failed (Parsing Error)"

var researchQueries = []string{
	"%s industry sector",
	"%s key products and services",
	"%s strategic priorities focus areas",
	"%s company profile",
}

// ResearchAgent builds an EntityProfile for a company or industry name.
type ResearchAgent struct {
	search search.Client
	gen    llm.TextGenerator
}

func NewResearchAgent(searchClient search.Client, gen llm.TextGenerator) *ResearchAgent {
	return &ResearchAgent{search: searchClient, gen: gen}
}

// Run issues the fixed research queries, aggregates hit text and asks the
// generator for the structured profile. A failed outcome still carries
// whatever partial profile exists so the caller can render it.
func (a *ResearchAgent) Run(ctx context.Context, name string) model.ResearchOutcome {
	metrics.AgentRunsTotal.WithLabelValues("research").Inc()
	utils.Logger.Info().Str("agent", "research").Str("subject", name).Msg("Starting research")

	profile := &model.EntityProfile{InputName: name}
	var text strings.Builder
	for _, tpl := range researchQueries {
		items := searchOrEmpty(ctx, a.search, "research", fmt.Sprintf(tpl, name), researchResults)
		profile.SearchResults = append(profile.SearchResults, items...)
		appendResultText(&text, items)
	}
	if text.Len() == 0 {
		utils.Logger.Warn().Str("agent", "research").Msg("No search results at all, cannot analyze the subject")
		return model.ResearchFailed(nil, "no search results for any research query")
	}

	prompt := fmt.Sprintf(profilePrompt, name, truncate(text.String(), maxPromptChars))
	raw, err := a.gen.Generate(ctx, prompt)
	if err != nil {
		metrics.GenerationErrorsTotal.WithLabelValues("research").Inc()
		marker := fmt.Sprintf("Error: %v", err)
		profile.Industry = marker
		profile.Segment = marker
		profile.Offerings = []string{marker}
		profile.StrategicFocus = []string{marker}
		return model.ResearchFailed(profile, marker)
	}

	var fields map[string]interface{}
	if extract.Object(raw, &fields) {
		mergeProfileFields(profile, fields)
	} else {
		metrics.ParseFailuresTotal.WithLabelValues("research").Inc()
		utils.Logger.Warn().Str("agent", "research").Msg("Could not salvage a JSON object from the response")
		profile.Industry = parseFailedMarker
		profile.Segment = parseFailedMarker
		profile.Offerings = []string{parseFailedMarker}
		profile.StrategicFocus = []string{parseFailedMarker}
		return model.ResearchFailed(profile, parseFailedMarker)
	}

	if profile.Industry == "" {
		profile.Industry = "N/A"
	}
	if !model.ProfileUsable(profile) {
		return model.ResearchFailed(profile, "industry could not be identified")
	}
	utils.Logger.Info().Str("agent", "research").Str("industry", profile.Industry).Str("segment", profile.Segment).Msg("Research finished")
	return model.ResearchOK(profile)
}

// mergeProfileFields copies only the four extraction keys into the profile.
// The generator sometimes returns "N/A" strings where a list was asked for,
// so list fields coerce scalars into single-element slices.
func mergeProfileFields(p *model.EntityProfile, fields map[string]interface{}) {
	if v, ok := fields["industry"]; ok {
		p.Industry = toString(v)
	}
	if v, ok := fields["segment"]; ok {
		p.Segment = toString(v)
	}
	if v, ok := fields["offerings"]; ok {
		p.Offerings = toStringList(v)
	}
	if v, ok := fields["strategic_focus"]; ok {
		p.StrategicFocus = toStringList(v)
	}
}

func toString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}

func toStringList(v interface{}) []string {
	switch t := v.(type) {
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, e := range t {
			out = append(out, toString(e))
		}
		return out
	case string:
		if t == "" || t == "N/A" {
			return nil
		}
		return []string{t}
	case nil:
		return nil
	default:
		return []string{toString(t)}
	}
}
