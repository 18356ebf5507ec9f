package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yatra/travel-planner/internal/types"
	"github.com/yatra/travel-planner/internal/validation"
)

func TestPrintPlan(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	plan := &types.PlanDocument{
		BestTimeToVisit: "Winter",
		Days: []types.Day{
			{DayNumber: 1, Theme: "Harbour walk"},
			{DayNumber: 2, Theme: "Backwaters"},
		},
		BudgetPlanner: types.BudgetBreakdown{GrandTotal: 4500, TotalPerPerson: 2250},
	}
	p.PrintPlan("Kochi", plan)

	out := buf.String()
	assert.Contains(t, out, "Itinerary: Kochi")
	assert.Contains(t, out, "Day 1: Harbour walk")
	assert.Contains(t, out, "Day 2: Backwaters")
	assert.Contains(t, out, "4500")
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "└")
}

func TestPrintPlan_NilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintPlan("Kochi", nil)
	assert.Empty(t, buf.String())
}

func TestPrintPlan_TruncatesLongDayLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	plan := &types.PlanDocument{}
	for i := 1; i <= 8; i++ {
		plan.Days = append(plan.Days, types.Day{DayNumber: i, Theme: "Theme"})
	}
	p.PrintPlan("Kochi", plan)

	out := buf.String()
	assert.Contains(t, out, "... and 3 more days")
	assert.Equal(t, 5, strings.Count(out, "Day "))
}

func TestPrintRecommendations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRecommendations([]types.Recommendation{
		{Name: "Hampi", MatchingScore: 0.92, Tags: []string{"heritage", "hiking"}},
	})

	out := buf.String()
	assert.Contains(t, out, "Hampi")
	assert.Contains(t, out, "0.92")
	assert.Contains(t, out, "heritage, hiking")
}

func TestPrintRecommendations_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRecommendations(nil)
	assert.Contains(t, buf.String(), "(none)")
}

func TestPrintIssues(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintIssues([]validation.Issue{
		{Type: validation.IssueLinkFormat, Severity: validation.SeverityWarning, Field: "days[0].morning.google_maps_url", Details: "shortened URL"},
	})

	out := buf.String()
	assert.Contains(t, out, "Warnings (1)")
	assert.Contains(t, out, "link_format")
}

func TestPrintIssues_EmptyIsNoop(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintIssues(nil)
	assert.Empty(t, buf.String())
}
