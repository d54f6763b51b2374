// Package source fetches candidate companies from the lead-data provider and
// normalizes them into the pipeline's data model.
package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/leadgen-cli/internal/model"
	"github.com/sells-group/leadgen-cli/pkg/apollo"
)

// Adapter queries the lead provider and returns normalized candidates.
type Adapter struct {
	client apollo.Client
}

// NewAdapter creates an Adapter backed by the given provider client.
func NewAdapter(client apollo.Client) *Adapter {
	return &Adapter{client: client}
}

// FetchLeads runs one provider search for the given spec. A failed or
// malformed provider response is fatal: without leads there is nothing for
// the rest of the pipeline to process. Records missing a name or website are
// dropped; the drop count is only reflected in the log line.
func (a *Adapter) FetchLeads(ctx context.Context, spec model.SearchSpec) ([]model.Candidate, error) {
	req := apollo.SearchRequest{
		EmployeeRanges: []string{fmt.Sprintf("%d,%d", spec.MinEmployees, spec.MaxEmployees)},
		Page:           1,
		PerPage:        spec.PageSize,
	}
	if spec.Industry != "" {
		req.IndustryKeywords = []string{spec.Industry}
	}
	if spec.Location != "" {
		req.OrganizationLocations = []string{spec.Location}
	}

	resp, err := a.client.SearchOrganizations(ctx, req)
	if err != nil {
		return nil, eris.Wrap(err, "source: search organizations")
	}
	if resp.Organizations == nil {
		return nil, eris.New("source: invalid response format")
	}

	candidates := make([]model.Candidate, 0, len(resp.Organizations))
	for _, org := range resp.Organizations {
		if org.Name == "" || org.WebsiteURL == "" {
			continue
		}
		candidates = append(candidates, model.Candidate{
			Name:          org.Name,
			Website:       org.WebsiteURL,
			EmployeeCount: max(org.EstimatedNumEmployees, 0),
			Industry:      org.Industry,
			Location:      joinLocation(org.City, org.State),
		})
	}

	zap.L().Info("source: leads fetched",
		zap.Int("returned", len(resp.Organizations)),
		zap.Int("usable", len(candidates)),
	)

	return candidates, nil
}

// joinLocation composes "City, State", tolerating either part being empty.
func joinLocation(city, state string) string {
	parts := make([]string, 0, 2)
	if city != "" {
		parts = append(parts, city)
	}
	if state != "" {
		parts = append(parts, state)
	}
	return strings.Join(parts, ", ")
}
