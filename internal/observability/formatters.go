// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/yatra/travel-planner/internal/types"
	"github.com/yatra/travel-planner/internal/validation"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintPlan outputs a human-readable summary of a generated plan document.
func (p *Printer) PrintPlan(destination string, plan *types.PlanDocument) {
	if plan == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Days:     %d\n", len(plan.Days)))
	sb.WriteString(fmt.Sprintf("Best:     %s\n", plan.BestTimeToVisit))
	sb.WriteString(fmt.Sprintf("Stays:    %d options\n", len(plan.StayOptions)))
	sb.WriteString(fmt.Sprintf("Food:     %d gems\n", len(plan.FoodGems)))
	sb.WriteString("\n")

	for i, day := range plan.Days {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more days\n", len(plan.Days)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("Day %d: %s\n", day.DayNumber, day.Theme))
	}

	sb.WriteString("\n")
	b := plan.BudgetPlanner
	sb.WriteString(fmt.Sprintf("Budget:   grand total %.0f\n", b.GrandTotal))
	sb.WriteString(fmt.Sprintf("          per person %.0f\n", b.TotalPerPerson))

	p.printBox(fmt.Sprintf("Itinerary: %s", destination), sb.String())
}

// PrintRecommendations outputs a human-readable recommendation list.
func (p *Printer) PrintRecommendations(recs []types.Recommendation) {
	var sb strings.Builder
	for _, rec := range recs {
		sb.WriteString(fmt.Sprintf("%-24s %.2f  %s\n", rec.Name, rec.MatchingScore, strings.Join(rec.Tags, ", ")))
	}
	if len(recs) == 0 {
		sb.WriteString("(none)\n")
	}
	p.printBox("Recommendations", sb.String())
}

// PrintIssues outputs soft validation findings, if any.
func (p *Printer) PrintIssues(issues []validation.Issue) {
	if len(issues) == 0 {
		return
	}
	var sb strings.Builder
	for _, issue := range issues {
		sb.WriteString(issue.String())
		sb.WriteString("\n")
	}
	p.printBox(fmt.Sprintf("Warnings (%d)", len(issues)), sb.String())
}
