// Package export serializes final results to CSV, JSON, and optionally XLSX,
// and renders the console report.
package export

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/leadgen-cli/internal/model"
)

// csvColumns defines the ordered CSV output columns.
var csvColumns = []string{
	"Company Name",
	"Website",
	"Employee Count",
	"Industry",
	"Location",
	"Insights",
	"Personalized Message",
	"Message Generated",
}

// WriteCSV writes results to a CSV file at the given path, overwriting any
// existing file. The header row is always written, even for zero results.
func WriteCSV(results []model.FinalResult, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "export: create csv file")
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(csvColumns); err != nil {
		return eris.Wrap(err, "export: write csv header")
	}
	for _, r := range results {
		if err := w.Write(buildRow(r)); err != nil {
			return eris.Wrap(err, "export: write csv row")
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return eris.Wrap(err, "export: flush csv")
	}
	return nil
}

// buildRow maps a FinalResult to a CSV row.
func buildRow(r model.FinalResult) []string {
	return []string{
		r.Name,
		r.Website,
		strconv.Itoa(r.EmployeeCount),
		r.Industry,
		r.Location,
		strings.Join(r.Insights, "; "),
		r.PersonalizedMessage,
		r.MessageGenerated.Format(time.RFC3339),
	}
}
