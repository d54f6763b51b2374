package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteReport(t *testing.T) {
	var sb strings.Builder

	WriteReport(&sb, "run-123", sampleResults())
	out := sb.String()

	assert.Contains(t, out, "Lead Generation Results (run run-123)")
	assert.Contains(t, out, "1. Acme")
	assert.Contains(t, out, "2. Beta")
	assert.Contains(t, out, "   Website:   https://acme.com")
	assert.Contains(t, out, "     - First insight")
	assert.Contains(t, out, "     Hi Acme team, let's talk.")
	assert.Contains(t, out, "Summary: 2 leads processed, 1 with AI-generated messages")
}

func TestWriteReport_GroupsEmployeeCount(t *testing.T) {
	var sb strings.Builder
	results := sampleResults()
	results[0].EmployeeCount = 12500

	WriteReport(&sb, "run-123", results)

	assert.Contains(t, sb.String(), "Employees: 12,500")
}

func TestWriteReport_Empty(t *testing.T) {
	var sb strings.Builder

	WriteReport(&sb, "run-123", nil)
	out := sb.String()

	assert.Contains(t, out, "Summary: 0 leads processed, 0 with AI-generated messages")
	assert.NotContains(t, out, "1.")
}
