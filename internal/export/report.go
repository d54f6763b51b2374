package export

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sells-group/leadgen-cli/internal/model"
)

const reportSeparator = "--------------------------------------------------------------------------------"

// WriteReport renders the human-readable run report: one block per result
// followed by a trailing summary.
func WriteReport(w io.Writer, runID string, results []model.FinalResult) {
	p := message.NewPrinter(language.English)

	fmt.Fprintf(w, "Lead Generation Results (run %s)\n", runID)
	fmt.Fprintln(w, reportSeparator)

	for i, r := range results {
		fmt.Fprintf(w, "\n%d. %s\n", i+1, r.Name)
		fmt.Fprintf(w, "   Website:   %s\n", r.Website)
		fmt.Fprintf(w, "   Industry:  %s\n", r.Industry)
		p.Fprintf(w, "   Employees: %d\n", r.EmployeeCount)
		if r.Location != "" {
			fmt.Fprintf(w, "   Location:  %s\n", r.Location)
		}

		fmt.Fprintln(w, "   Insights:")
		for _, insight := range r.Insights {
			fmt.Fprintf(w, "     - %s\n", insight)
		}

		fmt.Fprintln(w, "   Message:")
		for _, line := range strings.Split(r.PersonalizedMessage, "\n") {
			fmt.Fprintf(w, "     %s\n", line)
		}

		fmt.Fprintf(w, "\n%s\n", reportSeparator)
	}

	aiCount := 0
	for _, r := range results {
		if r.AIGenerated {
			aiCount++
		}
	}

	fmt.Fprintf(w, "\nSummary: %d leads processed, %d with AI-generated messages\n", len(results), aiCount)
}
