// Package enrich attaches descriptive insight strings to candidates, either
// from the company's public website or from deterministic industry heuristics
// when the website cannot be read.
package enrich

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/leadgen-cli/internal/model"
)

// descriptionPrefixLen bounds the metadata insight excerpt.
const descriptionPrefixLen = 150

// techKeywords are scanned in order; the first three present on the page are
// reported in a single summary insight.
var techKeywords = []string{
	"cloud", "ai", "machine learning", "saas", "api",
	"software", "technology", "digital", "automation", "analytics",
}

// businessKeywords are scanned in order; the first two present are reported.
var businessKeywords = []string{
	"enterprise", "fortune", "clients", "customers", "global", "scale", "growth",
}

// Enricher produces an EnrichedCandidate per Candidate. Exactly one of the
// two insight paths runs per candidate: website-derived or heuristic.
type Enricher struct {
	fetcher    WebsiteFetcher
	heuristics []HeuristicEntry
	now        func() time.Time
}

// NewEnricher creates an Enricher using the given website fetcher and
// heuristic table.
func NewEnricher(fetcher WebsiteFetcher, heuristics []HeuristicEntry) *Enricher {
	return &Enricher{
		fetcher:    fetcher,
		heuristics: heuristics,
		now:        time.Now,
	}
}

// WithNow sets a fixed clock for testing.
func (e *Enricher) WithNow(now func() time.Time) *Enricher {
	e.now = now
	return e
}

// Enrich attempts the website path and degrades to the heuristic path on any
// fetch or parse failure. It never fails: the result always carries at least
// one insight, and LastUpdated marks when the attempt completed.
func (e *Enricher) Enrich(ctx context.Context, c model.Candidate) model.EnrichedCandidate {
	insights, src := e.insightsFor(ctx, c)

	return model.EnrichedCandidate{
		Candidate:     c,
		Insights:      insights,
		InsightSource: src,
		LastUpdated:   e.now(),
	}
}

func (e *Enricher) insightsFor(ctx context.Context, c model.Candidate) ([]string, model.InsightSource) {
	page, err := e.fetcher.Fetch(ctx, c.Website)
	if err != nil {
		zap.L().Info("enrich: website unavailable, using heuristics",
			zap.String("company", c.Name),
			zap.String("website", c.Website),
			zap.Error(err),
		)
		return HeuristicInsights(c.Industry, c.EmployeeCount, e.heuristics), model.InsightSourceHeuristic
	}

	return websiteInsights(page, c.EmployeeCount), model.InsightSourceWebsite
}

// websiteInsights builds the insight list from a fetched page: metadata,
// technology keywords, business keywords, then the size insight.
func websiteInsights(page *Page, employeeCount int) []string {
	var insights []string

	if desc := metadataInsight(page); desc != "" {
		insights = append(insights, desc)
	}
	if tech := keywordInsight(page.Text, techKeywords, 3, "Technology focus"); tech != "" {
		insights = append(insights, tech)
	}
	if biz := keywordInsight(page.Text, businessKeywords, 2, "Business indicators"); biz != "" {
		insights = append(insights, biz)
	}

	insights = append(insights, sizeInsight(employeeCount))

	if len(insights) == 0 {
		return []string{insightNoWebsiteInfo}
	}
	return insights
}

// metadataInsight summarizes the page description, or the title when no
// description is present.
func metadataInsight(page *Page) string {
	summary := page.Description
	if summary == "" {
		summary = page.Title
	}
	if summary == "" {
		return ""
	}
	return fmt.Sprintf("Company describes itself as: %s", truncate(summary, descriptionPrefixLen))
}

// keywordInsight scans normalized page text for the given keywords in list
// order and reports up to limit matches as one summary string.
func keywordInsight(text string, keywords []string, limit int, label string) string {
	lower := strings.ToLower(text)

	var found []string
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			found = append(found, kw)
			if len(found) == limit {
				break
			}
		}
	}
	if len(found) == 0 {
		return ""
	}
	return fmt.Sprintf("%s: %s", label, strings.Join(found, ", "))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
