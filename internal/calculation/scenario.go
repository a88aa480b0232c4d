package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/tsumitate/nisa-calculator/internal/domain"
)

// returnVariance is the fixed band, in percentage points, separating the
// optimistic and pessimistic scenarios from the base projection.
var returnVariance = decimal.NewFromInt(2)

// Scenarios runs the base projection plus shifted-return variants.
// The pessimistic return is floored at 0%; the optimistic return is
// unclamped. The three projections are independent.
func (e *Engine) Scenarios(params domain.SimulationParams) *domain.RiskScenario {
	optimistic := params
	optimistic.AnnualReturn = params.AnnualReturn.Add(returnVariance)

	pessimistic := params
	pessimistic.AnnualReturn = decimal.Max(decimal.Zero, params.AnnualReturn.Sub(returnVariance))

	return &domain.RiskScenario{
		Optimistic:  e.Project(optimistic),
		Base:        e.Project(params),
		Pessimistic: e.Project(pessimistic),
	}
}
