package cmd

import (
	"fmt"
	"strings"

	"github.com/pateldev/intern-scout/internal/catalog"
	"github.com/pateldev/intern-scout/internal/match"
)

const noResultsMessage = "No internships found matching your criteria."

// renderResults formats filtered listings as plain numbered blocks. It is the
// always-available fallback when the AI presenter is disabled or fails.
func renderResults(results []match.Result) string {
	if len(results) == 0 {
		return noResultsMessage
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d internship(s):\n", len(results))

	for i, result := range results {
		b.WriteString("\n")
		b.WriteString(renderRecord(i+1, result.Record))

		if result.Score > 0 {
			fmt.Fprintf(&b, "   Relevance: %.1f/10 (matched: %s)\n",
				result.Score, strings.Join(result.Matched, ", "))
		}
	}

	return b.String()
}

func renderRecord(position int, r *catalog.Record) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%d. %s\n", position, r.Title)
	fmt.Fprintf(&b, "   Organization: %s\n", r.Organization)
	fmt.Fprintf(&b, "   Location: %s (%s)\n", r.Location, r.Mode)
	fmt.Fprintf(&b, "   For: %s\n", r.TargetAudience)
	fmt.Fprintf(&b, "   Stipend: %s\n", r.Stipend)

	if len(r.SkillsRequired) > 0 {
		fmt.Fprintf(&b, "   Skills: %s\n", strings.Join(r.SkillsRequired, ", "))
	}
	if r.ApplicationLink != catalog.NotSpecified && r.ApplicationLink != "" {
		fmt.Fprintf(&b, "   Apply: %s\n", r.ApplicationLink)
	}

	return b.String()
}

// renderQuestions formats clarification questions for a vague query.
func renderQuestions(questions []string) string {
	var b strings.Builder
	b.WriteString("Your query is quite broad. A few details would help narrow it down:\n")
	for _, q := range questions {
		fmt.Fprintf(&b, "  - %s\n", q)
	}
	return b.String()
}
