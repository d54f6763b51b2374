package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/leadgen-cli/internal/enrich"
	"github.com/sells-group/leadgen-cli/internal/export"
	"github.com/sells-group/leadgen-cli/internal/generate"
	"github.com/sells-group/leadgen-cli/internal/model"
	"github.com/sells-group/leadgen-cli/internal/source"
	"github.com/sells-group/leadgen-cli/pkg/anthropic"
	"github.com/sells-group/leadgen-cli/pkg/apollo"
)

type mockApollo struct {
	resp *apollo.SearchResponse
	err  error
}

func (m *mockApollo) SearchOrganizations(_ context.Context, _ apollo.SearchRequest) (*apollo.SearchResponse, error) {
	return m.resp, m.err
}

type mockFetcher struct {
	page *enrich.Page
	err  error
}

func (m *mockFetcher) Fetch(_ context.Context, _ string) (*enrich.Page, error) {
	return m.page, m.err
}

type mockLLM struct {
	text string
	err  error
}

func (m *mockLLM) CreateMessage(_ context.Context, _ anthropic.MessageRequest) (*anthropic.MessageResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &anthropic.MessageResponse{Text: m.text}, nil
}

func newTestPipeline(t *testing.T, apolloClient apollo.Client, fetcher enrich.WebsiteFetcher, llm anthropic.Client) (*Pipeline, Options, *strings.Builder) {
	t.Helper()
	dir := t.TempDir()
	opts := Options{
		CSVPath:  filepath.Join(dir, "results.csv"),
		JSONPath: filepath.Join(dir, "results.json"),
	}

	var report strings.Builder
	p := New(
		source.NewAdapter(apolloClient),
		enrich.NewEnricher(fetcher, enrich.DefaultHeuristics()),
		generate.NewGenerator(llm, generate.Options{Model: "claude-haiku-4-5-20251001", Temperature: 0.7, MaxTokens: 300}),
		opts,
		&report,
	)
	return p, opts, &report
}

func testSpec() model.SearchSpec {
	return model.SearchSpec{MinEmployees: 10, MaxEmployees: 500, Industry: "Software", PageSize: 5}
}

func TestRun_EndToEnd(t *testing.T) {
	apolloClient := &mockApollo{resp: &apollo.SearchResponse{
		Organizations: []apollo.Organization{
			{Name: "Acme", WebsiteURL: "https://acme.com", EstimatedNumEmployees: 150, Industry: "Enterprise Software", City: "Austin", State: "Texas"},
			{Name: "", WebsiteURL: "https://dropped.com"},
			{Name: "Beta", WebsiteURL: "https://beta.io", EstimatedNumEmployees: 12, Industry: "Unknown Widgets"},
		},
	}}
	fetcher := &mockFetcher{err: errors.New("unreachable")}
	llm := &mockLLM{err: errors.New("overloaded")}

	p, opts, report := newTestPipeline(t, apolloClient, fetcher, llm)
	results, err := p.Run(context.Background(), testSpec())

	require.NoError(t, err)

	// One result per usable candidate, no silent drops past the source stage.
	require.Len(t, results, 2)
	for _, r := range results {
		assert.NotEmpty(t, r.Insights)
		assert.NotEmpty(t, r.PersonalizedMessage)
		assert.False(t, r.AIGenerated)
		assert.Equal(t, model.InsightSourceHeuristic, r.InsightSource)
	}

	// Both exports are written.
	loaded, err := export.ReadJSON(opts.JSONPath)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, results[0].Name, loaded[0].Name)
	assert.Equal(t, results[0].Insights, loaded[0].Insights)
	assert.Equal(t, results[1].PersonalizedMessage, loaded[1].PersonalizedMessage)

	csvData, err := os.ReadFile(opts.CSVPath)
	require.NoError(t, err)
	assert.Contains(t, string(csvData), "Acme")

	assert.Contains(t, report.String(), "Summary: 2 leads processed, 0 with AI-generated messages")
}

func TestRun_AIPathCounted(t *testing.T) {
	apolloClient := &mockApollo{resp: &apollo.SearchResponse{
		Organizations: []apollo.Organization{
			{Name: "Acme", WebsiteURL: "https://acme.com", EstimatedNumEmployees: 150, Industry: "Software"},
		},
	}}
	fetcher := &mockFetcher{page: &enrich.Page{Description: "Cloud software for enterprise teams.", Text: "cloud software enterprise"}}
	llm := &mockLLM{text: "Hi Acme team, impressive cloud platform."}

	p, _, report := newTestPipeline(t, apolloClient, fetcher, llm)
	results, err := p.Run(context.Background(), testSpec())

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].AIGenerated)
	assert.Equal(t, model.InsightSourceWebsite, results[0].InsightSource)
	assert.Contains(t, report.String(), "1 with AI-generated messages")
}

func TestRun_SourceFailureIsFatal(t *testing.T) {
	p, opts, _ := newTestPipeline(t,
		&mockApollo{err: errors.New("provider down")},
		&mockFetcher{err: errors.New("unused")},
		&mockLLM{err: errors.New("unused")},
	)

	results, err := p.Run(context.Background(), testSpec())

	assert.Error(t, err)
	assert.Nil(t, results)

	// Nothing was exported.
	_, statErr := os.Stat(opts.CSVPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_EmptyCandidateList(t *testing.T) {
	p, opts, report := newTestPipeline(t,
		&mockApollo{resp: &apollo.SearchResponse{Organizations: []apollo.Organization{}}},
		&mockFetcher{err: errors.New("unused")},
		&mockLLM{err: errors.New("unused")},
	)

	results, err := p.Run(context.Background(), testSpec())

	require.NoError(t, err)
	assert.Empty(t, results)

	// Both export files exist: header-only CSV and an empty JSON array.
	loaded, err := export.ReadJSON(opts.JSONPath)
	require.NoError(t, err)
	assert.Empty(t, loaded)

	csvData, err := os.ReadFile(opts.CSVPath)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(strings.TrimSpace(string(csvData)), "\n")+1)

	assert.Contains(t, report.String(), "Summary: 0 leads processed")
}

func TestRun_PersistFailureIsFatal(t *testing.T) {
	apolloClient := &mockApollo{resp: &apollo.SearchResponse{
		Organizations: []apollo.Organization{
			{Name: "Acme", WebsiteURL: "https://acme.com", EstimatedNumEmployees: 150, Industry: "Software"},
		},
	}}

	dir := t.TempDir()
	var report strings.Builder
	p := New(
		source.NewAdapter(apolloClient),
		enrich.NewEnricher(&mockFetcher{err: errors.New("unreachable")}, enrich.DefaultHeuristics()),
		generate.NewGenerator(&mockLLM{err: errors.New("overloaded")}, generate.Options{Model: "m", MaxTokens: 300}),
		Options{
			CSVPath:  filepath.Join(dir, "missing", "results.csv"),
			JSONPath: filepath.Join(dir, "results.json"),
		},
		&report,
	)

	results, err := p.Run(context.Background(), testSpec())

	assert.Error(t, err)
	assert.Nil(t, results)
	assert.Contains(t, err.Error(), "persist csv")
}

func TestRun_XLSXExport(t *testing.T) {
	apolloClient := &mockApollo{resp: &apollo.SearchResponse{
		Organizations: []apollo.Organization{
			{Name: "Acme", WebsiteURL: "https://acme.com", EstimatedNumEmployees: 150, Industry: "Software"},
		},
	}}

	dir := t.TempDir()
	var report strings.Builder
	opts := Options{
		CSVPath:  filepath.Join(dir, "results.csv"),
		JSONPath: filepath.Join(dir, "results.json"),
		XLSXPath: filepath.Join(dir, "results.xlsx"),
	}
	p := New(
		source.NewAdapter(apolloClient),
		enrich.NewEnricher(&mockFetcher{err: errors.New("unreachable")}, enrich.DefaultHeuristics()),
		generate.NewGenerator(&mockLLM{err: errors.New("overloaded")}, generate.Options{Model: "m", MaxTokens: 300}),
		opts,
		&report,
	)

	_, err := p.Run(context.Background(), testSpec())

	require.NoError(t, err)
	_, statErr := os.Stat(opts.XLSXPath)
	assert.NoError(t, statErr)
}
