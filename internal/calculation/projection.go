package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/tsumitate/nisa-calculator/internal/domain"
)

var (
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// Engine runs the accumulation projections. It holds no per-call state;
// a single Engine is safe for concurrent use.
type Engine struct {
	Logger Logger
}

// NewEngine creates a projection engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// Project simulates monthly contributions compounding over the whole
// horizon and returns the year-by-year breakdown plus summary totals.
//
// Contributions land at the start of each month and compound for the
// remainder of that month onward. The running total and principal stay
// exact across the horizon; rounding to whole yen happens once per
// field when a yearly snapshot is recorded and never feeds back into
// the running values.
//
// The engine performs no input validation. Callers must supply finite
// parameters (internal/config and internal/server enforce ranges);
// non-finite inputs would propagate through the arithmetic.
func (e *Engine) Project(params domain.SimulationParams) *domain.SimulationResult {
	monthlyReturn := params.EffectiveReturn().Div(twelve)
	growth := one.Add(monthlyReturn)
	annualContribution := params.AnnualContribution()

	e.Logger.Debugf("project: monthly=%s years=%d monthlyReturn=%s",
		params.MonthlyAmount, params.Years, monthlyReturn)

	total := decimal.Zero
	principal := decimal.Zero
	prevTotalRounded := decimal.Zero

	yearly := make([]domain.YearlyData, 0, params.Years)
	for year := 1; year <= params.Years; year++ {
		principal = principal.Add(annualContribution)
		for month := 0; month < 12; month++ {
			total = total.Add(params.MonthlyAmount).Mul(growth)
		}

		totalRounded := total.Round(0)
		principalRounded := principal.Round(0)
		yearly = append(yearly, domain.YearlyData{
			Year:           year,
			Principal:      principalRounded,
			Earnings:       totalRounded.Sub(principalRounded),
			Total:          totalRounded,
			YearlyEarnings: totalRounded.Sub(prevTotalRounded).Sub(annualContribution),
		})
		prevTotalRounded = totalRounded
	}

	result := &domain.SimulationResult{YearlyData: yearly}
	if last := result.FinalYear(); last.Year != 0 {
		result.FinalAmount = last.Total
		result.TotalPrincipal = last.Principal
		result.TotalEarnings = last.Earnings
	}
	return result
}
