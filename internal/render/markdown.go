// internal/render/markdown.go
// Markdown rendering for the proposal bundle: the on-screen report and the
// downloadable resource-links document.
package render

import (
	"fmt"
	"strings"

	"usecase-gen/internal/model"
)

// Report renders the whole bundle as a markdown document.
func Report(b model.ProposalBundle) string {
	var sb strings.Builder

	if b.Status == model.StatusFailedResearch {
		sb.WriteString("# Proposal Generation Failed\n\n")
		sb.WriteString("Could not generate a proposal due to initial research failure.\n\n")
		sb.WriteString("## Research Attempt Summary\n\n")
		writeResearchSummary(&sb, b.ResearchData)
		return sb.String()
	}

	name := "the subject"
	if b.ResearchData != nil && b.ResearchData.InputName != "" {
		name = b.ResearchData.InputName
	}
	fmt.Fprintf(&sb, "# AI/GenAI Proposal for %s\n\n", name)

	sb.WriteString("## Research Summary\n\n")
	writeResearchSummary(&sb, b.ResearchData)

	sb.WriteString("## Proposed AI/GenAI Use Cases\n\n")
	if len(b.UseCases) == 0 {
		sb.WriteString("No specific use cases were generated.\n\n")
	}
	for i, uc := range b.UseCases {
		fmt.Fprintf(&sb, "### %d. %s\n\n", i+1, orNA(uc.Title))
		fmt.Fprintf(&sb, "**Description:** %s\n\n", orNA(uc.Description))
		fmt.Fprintf(&sb, "**AI Application:** %s\n\n", orNA(uc.AIApplication))
		fmt.Fprintf(&sb, "**Potential Benefit:** %s\n\n", orNA(uc.PotentialBenefit))
		fmt.Fprintf(&sb, "**Relevance:** %s\n\n", orNA(uc.Relevance))

		if links := b.ResourceLinks[uc.Title]; len(links) > 0 {
			sb.WriteString("**Resources:**\n\n")
			for _, res := range links {
				fmt.Fprintf(&sb, "- [%s](%s)\n", linkText(res), res.Link)
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString("## General GenAI Solution Suggestions\n\n")
	for i, s := range b.Suggestions {
		fmt.Fprintf(&sb, "### %d. %s\n\n", i+1, orNA(s.Title))
		fmt.Fprintf(&sb, "**Application:** %s\n\n", orNA(s.Application))
		fmt.Fprintf(&sb, "**Potential Benefit:** %s\n\n", orNA(s.PotentialBenefit))
		fmt.Fprintf(&sb, "**Fit Area:** %s\n\n", orNA(s.FitArea))
	}
	return sb.String()
}

// ResourceDoc renders the downloadable resource-links document. Use cases are
// listed in generation order. Returns "" when no links were collected.
func ResourceDoc(b model.ProposalBundle) string {
	var sb strings.Builder
	sb.WriteString("# Relevant Resource Links\n\n")

	found := false
	for _, uc := range b.UseCases {
		links := b.ResourceLinks[uc.Title]
		if len(links) == 0 {
			continue
		}
		found = true
		fmt.Fprintf(&sb, "## %s\n\n", uc.Title)
		for _, res := range links {
			fmt.Fprintf(&sb, "- [%s](%s)\n", linkText(res), res.Link)
		}
		sb.WriteString("\n")
	}
	if !found {
		return ""
	}
	return sb.String()
}

// ResourceFileName sanitizes the subject name into the download file name.
func ResourceFileName(inputName string) string {
	base := strings.NewReplacer(" ", "_", "/", "_").Replace(inputName)
	if base == "" {
		base = "resources"
	}
	return base + "_ai_resources.md"
}

func writeResearchSummary(sb *strings.Builder, p *model.EntityProfile) {
	if p == nil {
		sb.WriteString("No research data was gathered.\n\n")
		return
	}
	fmt.Fprintf(sb, "**Industry:** %s\n\n", orNA(p.Industry))
	fmt.Fprintf(sb, "**Segment:** %s\n\n", orNA(p.Segment))
	fmt.Fprintf(sb, "**Key Offerings:** %s\n\n", orNA(strings.Join(p.Offerings, ", ")))
	fmt.Fprintf(sb, "**Strategic Focus:** %s\n\n", orNA(strings.Join(p.StrategicFocus, ", ")))
}

func linkText(res model.ResourceLink) string {
	if res.Title != "" {
		return res.Title
	}
	if res.Link != "" {
		return res.Link
	}
	return "Link"
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
