// internal/model/model.go
// Records flowing between the pipeline agents. Each agent owns the record it
// constructs; downstream agents only read.
package model

import "strings"

// SearchResultItem is a single search hit. Link is the dedup key downstream.
type SearchResultItem struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

// EntityProfile is the structured research record for one company or industry.
// Industry is never empty on a finished profile: absence is the literal "N/A"
// and extraction failures leave a marker string containing "Error", so
// consumers test membership instead of null-checking.
type EntityProfile struct {
	InputName      string             `json:"input_name"`
	Industry       string             `json:"industry"`
	Segment        string             `json:"segment"`
	Offerings      []string           `json:"offerings"`
	StrategicFocus []string           `json:"strategic_focus"`
	SearchResults  []SearchResultItem `json:"search_results"`
}

// UseCase is one proposed AI/GenAI application. Order follows the model's
// emission order, no re-sorting.
type UseCase struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	AIApplication    string `json:"ai_application"`
	PotentialBenefit string `json:"potential_benefit"`
	Relevance        string `json:"relevance"`
}

// ResourceLink points at a dataset or code resource for a use case.
type ResourceLink struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// ResourceMap keys use-case titles to their collected links. Within one use
// case the links are unique, first occurrence wins.
type ResourceMap map[string][]ResourceLink

// GenAISuggestion is a generic GenAI application idea.
type GenAISuggestion struct {
	Title            string `json:"title"`
	Application      string `json:"application"`
	PotentialBenefit string `json:"potential_benefit"`
	FitArea          string `json:"fit_area"`
}

// Status of a finished orchestration run.
type Status string

const (
	StatusSuccess        Status = "Success"
	StatusFailedResearch Status = "Failed Research"
)

// ProposalBundle is the terminal artifact of one orchestration run.
type ProposalBundle struct {
	UseCases      []UseCase         `json:"use_cases"`
	ResourceLinks ResourceMap       `json:"resource_links"`
	Suggestions   []GenAISuggestion `json:"genai_suggestions"`
	ResearchData  *EntityProfile    `json:"research_data"`
	Status        Status            `json:"status"`
}

// ResearchOutcome is the tagged result of the research agent. Reason is empty
// on success. Profile may carry partial data even when research failed, so the
// caller can still render what was gathered.
type ResearchOutcome struct {
	Profile *EntityProfile
	Reason  string
}

// ResearchOK wraps a usable profile.
func ResearchOK(p *EntityProfile) ResearchOutcome {
	return ResearchOutcome{Profile: p}
}

// ResearchFailed records why research produced no usable profile.
func ResearchFailed(p *EntityProfile, reason string) ResearchOutcome {
	return ResearchOutcome{Profile: p, Reason: reason}
}

// OK reports whether downstream agents may run against the profile.
func (o ResearchOutcome) OK() bool {
	return o.Reason == "" && o.Profile != nil
}

// ProfileUsable reports whether a profile passed the research gate. Only
// Industry carries the failure convention: "N/A" means the sector was never
// identified and a marker containing "Error" (case sensitive) means extraction
// or generation failed. Segment, offerings and strategic focus may carry the
// same markers but never gate anything.
func ProfileUsable(p *EntityProfile) bool {
	if p == nil {
		return false
	}
	if p.Industry == "" || p.Industry == "N/A" {
		return false
	}
	return !strings.Contains(p.Industry, "Error")
}
