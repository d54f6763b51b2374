package source

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/leadgen-cli/internal/model"
	"github.com/sells-group/leadgen-cli/pkg/apollo"
)

// mockClient implements apollo.Client for testing.
type mockClient struct {
	resp    *apollo.SearchResponse
	err     error
	lastReq apollo.SearchRequest
}

func (m *mockClient) SearchOrganizations(_ context.Context, req apollo.SearchRequest) (*apollo.SearchResponse, error) {
	m.lastReq = req
	return m.resp, m.err
}

func testSpec() model.SearchSpec {
	return model.SearchSpec{
		MinEmployees: 10,
		MaxEmployees: 500,
		Industry:     "Software",
		Location:     "Austin, Texas",
		PageSize:     5,
	}
}

func TestFetchLeads_DropsIncompleteRecords(t *testing.T) {
	client := &mockClient{resp: &apollo.SearchResponse{
		Organizations: []apollo.Organization{
			{Name: "Acme", WebsiteURL: "https://acme.com", EstimatedNumEmployees: 120, Industry: "Software", City: "Austin", State: "Texas"},
			{Name: "", WebsiteURL: "https://nameless.com"},
			{Name: "No Website Inc", WebsiteURL: ""},
			{Name: "Beta", WebsiteURL: "https://beta.io", EstimatedNumEmployees: 40, Industry: "Data"},
		},
	}}

	leads, err := NewAdapter(client).FetchLeads(context.Background(), testSpec())

	require.NoError(t, err)
	require.Len(t, leads, 2)
	for _, lead := range leads {
		assert.NotEmpty(t, lead.Name)
		assert.NotEmpty(t, lead.Website)
	}
	assert.Equal(t, "Austin, Texas", leads[0].Location)
	assert.Empty(t, leads[1].Location)
}

func TestFetchLeads_BuildsProviderRequest(t *testing.T) {
	client := &mockClient{resp: &apollo.SearchResponse{Organizations: []apollo.Organization{}}}

	_, err := NewAdapter(client).FetchLeads(context.Background(), testSpec())

	require.NoError(t, err)
	assert.Equal(t, []string{"10,500"}, client.lastReq.EmployeeRanges)
	assert.Equal(t, []string{"Software"}, client.lastReq.IndustryKeywords)
	assert.Equal(t, []string{"Austin, Texas"}, client.lastReq.OrganizationLocations)
	assert.Equal(t, 1, client.lastReq.Page)
	assert.Equal(t, 5, client.lastReq.PerPage)
}

func TestFetchLeads_ProviderError(t *testing.T) {
	client := &mockClient{err: errors.New("connection refused")}

	leads, err := NewAdapter(client).FetchLeads(context.Background(), testSpec())

	assert.Error(t, err)
	assert.Nil(t, leads)
	assert.Contains(t, err.Error(), "search organizations")
}

func TestFetchLeads_MissingOrganizations(t *testing.T) {
	client := &mockClient{resp: &apollo.SearchResponse{}}

	leads, err := NewAdapter(client).FetchLeads(context.Background(), testSpec())

	assert.Error(t, err)
	assert.Nil(t, leads)
	assert.Contains(t, err.Error(), "invalid response format")
}

func TestFetchLeads_ClampsNegativeEmployeeCount(t *testing.T) {
	client := &mockClient{resp: &apollo.SearchResponse{
		Organizations: []apollo.Organization{
			{Name: "Acme", WebsiteURL: "https://acme.com", EstimatedNumEmployees: -3},
		},
	}}

	leads, err := NewAdapter(client).FetchLeads(context.Background(), testSpec())

	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, 0, leads[0].EmployeeCount)
}
