package validation

import (
	"math"

	"github.com/yatra/travel-planner/internal/types"
)

// budgetTolerance is the rounding slack allowed on derived budget fields,
// one smallest currency unit.
const budgetTolerance = 1.0

// CheckBudget verifies the budget identity: grand_total must equal the sum of
// the five component fields and total_per_person must equal grand_total
// divided by the traveler count, both within one currency unit. Violations
// are flagged, never corrected.
func CheckBudget(b types.BudgetBreakdown, travelers int) []Issue {
	var issues []Issue

	sum := b.ComponentSum()
	if math.Abs(b.GrandTotal-sum) > budgetTolerance {
		issues = append(issues, warn(IssueBudgetInconsistency, "budget_planner.grand_total",
			"grand_total %.2f does not match component sum %.2f", b.GrandTotal, sum))
	}

	if travelers > 0 {
		expected := math.Round(b.GrandTotal / float64(travelers))
		if math.Abs(b.TotalPerPerson-expected) > budgetTolerance {
			issues = append(issues, warn(IssueBudgetInconsistency, "budget_planner.total_per_person",
				"total_per_person %.2f does not match grand_total %.2f split across %d travelers (expected %.0f)",
				b.TotalPerPerson, b.GrandTotal, travelers, expected))
		}
	}

	return issues
}
