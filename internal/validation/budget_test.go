package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yatra/travel-planner/internal/types"
)

func TestCheckBudget_Consistent(t *testing.T) {
	b := types.BudgetBreakdown{
		Travel:         200,
		Accommodation:  300,
		Food:           150,
		Activities:     100,
		LocalTransport: 50,
		TotalPerPerson: 400,
		GrandTotal:     800,
	}
	assert.Empty(t, CheckBudget(b, 2))
}

func TestCheckBudget_WithinTolerance(t *testing.T) {
	// Off by exactly one currency unit on both derived fields
	b := types.BudgetBreakdown{
		Travel:         200,
		Accommodation:  300,
		Food:           150,
		Activities:     100,
		LocalTransport: 50,
		TotalPerPerson: 401,
		GrandTotal:     801,
	}
	assert.Empty(t, CheckBudget(b, 2))
}

func TestCheckBudget_GrandTotalMismatch(t *testing.T) {
	b := types.BudgetBreakdown{
		Travel:         200,
		Accommodation:  300,
		Food:           150,
		Activities:     100,
		LocalTransport: 50,
		TotalPerPerson: 450,
		GrandTotal:     900,
	}
	issues := CheckBudget(b, 2)
	require.Len(t, issues, 1)
	assert.Equal(t, IssueBudgetInconsistency, issues[0].Type)
	assert.Equal(t, "budget_planner.grand_total", issues[0].Field)
}

func TestCheckBudget_PerPersonMismatch(t *testing.T) {
	b := types.BudgetBreakdown{
		Travel:         200,
		Accommodation:  300,
		Food:           150,
		Activities:     100,
		LocalTransport: 50,
		TotalPerPerson: 800,
		GrandTotal:     800,
	}
	issues := CheckBudget(b, 2)
	require.Len(t, issues, 1)
	assert.Equal(t, "budget_planner.total_per_person", issues[0].Field)
}

func TestCheckBudget_OddSplitRounds(t *testing.T) {
	// 1000 across 3 travelers rounds to 333
	b := types.BudgetBreakdown{
		Travel:         400,
		Accommodation:  300,
		Food:           150,
		Activities:     100,
		LocalTransport: 50,
		TotalPerPerson: 333,
		GrandTotal:     1000,
	}
	assert.Empty(t, CheckBudget(b, 3))
}

func TestCheckBudget_ZeroTravelersSkipsPerPerson(t *testing.T) {
	b := types.BudgetBreakdown{
		Travel:         200,
		Accommodation:  300,
		Food:           150,
		Activities:     100,
		LocalTransport: 50,
		TotalPerPerson: 9999,
		GrandTotal:     800,
	}
	assert.Empty(t, CheckBudget(b, 0))
}
