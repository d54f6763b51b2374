package generate

import (
	"fmt"
	"strings"

	"github.com/sells-group/leadgen-cli/internal/model"
)

// systemPrompt frames every generation request: seller persona, five
// stylistic requirements, and the word-count ceiling.
const systemPrompt = `You are a senior sales development representative at a B2B technology consultancy writing cold outreach emails.

Requirements:
1. Open with a specific, researched observation about the company.
2. Keep the tone warm and professional, never pushy.
3. Reference at most two of the provided insights, woven in naturally.
4. Close with a single low-friction call to action.
5. Write in plain prose with no bullet points or placeholders.

Keep the full message under 150 words.`

// buildPrompt renders the per-candidate user message.
func buildPrompt(ec model.EnrichedCandidate) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Write a personalized outreach message to %s.\n\n", ec.Name)
	fmt.Fprintf(&b, "Company: %s\n", ec.Name)
	fmt.Fprintf(&b, "Industry: %s\n", ec.Industry)
	fmt.Fprintf(&b, "Employees: %d\n", ec.EmployeeCount)
	if ec.Location != "" {
		fmt.Fprintf(&b, "Location: %s\n", ec.Location)
	}
	fmt.Fprintf(&b, "\nWhat we know about them:\n")
	for _, insight := range ec.Insights {
		fmt.Fprintf(&b, "- %s\n", insight)
	}

	return b.String()
}

// fallbackMessage builds the deterministic templated message used when the
// generative provider is unavailable.
func fallbackMessage(ec model.EnrichedCandidate) string {
	firstInsight := strings.ToLower(ec.Insights[0])

	return fmt.Sprintf(
		"Hi %s team,\n\n"+
			"I came across your company while researching the %s space. "+
			"With a team of %d, you're at an exciting stage, and we noticed that %s.\n\n"+
			"We help companies like yours streamline their technology operations and scale with confidence. "+
			"Would you be open to a quick 15-minute call next week to see if there's a fit?\n\n"+
			"Best regards,\nThe Sells Group Team",
		ec.Name, ec.Industry, ec.EmployeeCount, firstInsight,
	)
}
