package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestScenarios_Ordering(t *testing.T) {
	scenario := NewEngine().Scenarios(params(30000, 20, 5))

	assert.True(t, scenario.Optimistic.FinalAmount.GreaterThanOrEqual(scenario.Base.FinalAmount))
	assert.True(t, scenario.Base.FinalAmount.GreaterThanOrEqual(scenario.Pessimistic.FinalAmount))
}

func TestScenarios_VarianceBand(t *testing.T) {
	engine := NewEngine()
	scenario := engine.Scenarios(params(30000, 20, 5))

	// Shifted returns must reproduce standalone projections exactly.
	assert.True(t, scenario.Optimistic.FinalAmount.Equal(engine.Project(params(30000, 20, 7)).FinalAmount))
	assert.True(t, scenario.Pessimistic.FinalAmount.Equal(engine.Project(params(30000, 20, 3)).FinalAmount))
	assert.True(t, scenario.Base.FinalAmount.Equal(decimal.NewFromInt(12382389)))
}

func TestScenarios_PessimisticFlooredAtZero(t *testing.T) {
	scenario := NewEngine().Scenarios(params(10000, 10, 1))

	// 1% - 2pt clamps to 0%: pure summation, no earnings.
	assert.True(t, scenario.Pessimistic.TotalEarnings.IsZero(),
		"pessimistic earnings = %s", scenario.Pessimistic.TotalEarnings)
	assert.True(t, scenario.Pessimistic.FinalAmount.Equal(decimal.NewFromInt(1200000)))

	// Optimistic is unclamped and still grows.
	assert.True(t, scenario.Optimistic.TotalEarnings.IsPositive())
}

func TestScenarios_InputParamsUntouched(t *testing.T) {
	p := params(20000, 15, 3)
	NewEngine().Scenarios(p)

	assert.True(t, p.AnnualReturn.Equal(decimal.NewFromInt(3)), "caller params mutated")
}
