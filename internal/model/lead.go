package model

import "time"

// SearchSpec describes the lead search submitted to the provider.
// Immutable once built at the CLI boundary.
type SearchSpec struct {
	MinEmployees int    `json:"min_employees"`
	MaxEmployees int    `json:"max_employees"`
	Industry     string `json:"industry"`
	Location     string `json:"location"`
	PageSize     int    `json:"page_size"`
}

// InsightSource records which enrichment path produced a candidate's insights.
type InsightSource string

const (
	InsightSourceWebsite   InsightSource = "website"
	InsightSourceHeuristic InsightSource = "heuristic"
)

// Candidate is one prospective company returned by the lead source.
// Records missing a name or website never make it past the source adapter.
type Candidate struct {
	Name          string `json:"name"`
	Website       string `json:"website"`
	EmployeeCount int    `json:"employee_count"`
	Industry      string `json:"industry"`
	Location      string `json:"location,omitempty"`
}

// EnrichedCandidate is a Candidate extended with descriptive insights.
// Insights always holds at least one entry.
type EnrichedCandidate struct {
	Candidate
	Insights      []string      `json:"insights"`
	InsightSource InsightSource `json:"insight_source"`
	LastUpdated   time.Time     `json:"last_updated"`
}

// FinalResult is the terminal record for one candidate: enrichment plus a
// personalized outreach message. AIGenerated records whether the message came
// from the generative provider or the deterministic template.
type FinalResult struct {
	EnrichedCandidate
	PersonalizedMessage string    `json:"personalized_message"`
	MessageGenerated    time.Time `json:"message_generated"`
	AIGenerated         bool      `json:"ai_generated"`
}
