package enrich

import (
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Insight text used by both enrichment paths.
const (
	insightSizeLarge      = "Large team suggests significant IT infrastructure needs"
	insightSizeGrowing    = "Growing company likely expanding their tech stack"
	insightNoIndustryInfo = "Limited industry information available"
	insightNoWebsiteInfo  = "Limited website information available"
)

// largeCompanyThreshold splits the two size insights.
const largeCompanyThreshold = 100

// HeuristicEntry maps an industry keyword to its canned insight strings.
// Entries are matched in declaration order; the first keyword found as a
// substring of the candidate's industry wins.
type HeuristicEntry struct {
	Keyword  string   `yaml:"keyword"`
	Insights []string `yaml:"insights"`
}

// DefaultHeuristics returns the built-in industry heuristic table.
func DefaultHeuristics() []HeuristicEntry {
	return []HeuristicEntry{
		{Keyword: "Software", Insights: []string{
			"Likely needs scalable development infrastructure",
			"May benefit from developer productivity tooling",
			"Probably ships on a continuous release cadence",
		}},
		{Keyword: "Data", Insights: []string{
			"Works with large data volumes",
			"May need data pipeline and warehousing support",
			"Likely values analytics and reporting capabilities",
		}},
		{Keyword: "Cloud", Insights: []string{
			"Already cloud-native or actively migrating",
			"May be evaluating infrastructure cost optimization",
			"Likely operates across multiple cloud services",
		}},
		{Keyword: "AI", Insights: []string{
			"Working with machine learning workloads",
			"Needs significant compute resources",
			"May benefit from model deployment tooling",
		}},
		{Keyword: "Cyber", Insights: []string{
			"Security is a core business concern",
			"Likely operates under compliance requirements",
			"May need security automation and monitoring",
		}},
	}
}

// LoadHeuristics reads a heuristic table override from a YAML file,
// preserving declaration order.
func LoadHeuristics(path string) ([]HeuristicEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "enrich: read heuristics file")
	}

	var entries []HeuristicEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, eris.Wrap(err, "enrich: parse heuristics file")
	}
	if len(entries) == 0 {
		return nil, eris.New("enrich: heuristics file is empty")
	}

	return entries, nil
}

// HeuristicInsights derives insights purely from static candidate data.
// Deterministic: the same industry and employee count always yield the same
// list. The size insight is always the final entry.
func HeuristicInsights(industry string, employeeCount int, table []HeuristicEntry) []string {
	var insights []string

	matched := false
	for _, entry := range table {
		if strings.Contains(industry, entry.Keyword) {
			insights = append(insights, entry.Insights...)
			matched = true
			break
		}
	}
	if !matched {
		insights = append(insights, insightNoIndustryInfo)
	}

	return append(insights, sizeInsight(employeeCount))
}

// sizeInsight returns the company-size heuristic shared by both paths.
func sizeInsight(employeeCount int) string {
	if employeeCount > largeCompanyThreshold {
		return insightSizeLarge
	}
	return insightSizeGrowing
}
