package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsumitate/nisa-calculator/internal/domain"
)

func params(monthly float64, years int, annualReturn float64) domain.SimulationParams {
	return domain.SimulationParams{
		MonthlyAmount: decimal.NewFromFloat(monthly),
		Years:         years,
		AnnualReturn:  decimal.NewFromFloat(annualReturn),
	}
}

func TestProject_ZeroReturnIsSimpleSummation(t *testing.T) {
	engine := NewEngine()
	result := engine.Project(params(10000, 10, 0))

	assert.True(t, result.TotalPrincipal.Equal(decimal.NewFromInt(1200000)),
		"principal = %s", result.TotalPrincipal)
	assert.True(t, result.TotalEarnings.IsZero(), "earnings = %s", result.TotalEarnings)
	assert.True(t, result.FinalAmount.Equal(decimal.NewFromInt(1200000)),
		"final = %s", result.FinalAmount)

	for _, y := range result.YearlyData {
		if !y.Principal.Equal(y.Total) {
			t.Fatalf("year %d: principal %s != total %s at zero return", y.Year, y.Principal, y.Total)
		}
		if !y.YearlyEarnings.IsZero() {
			t.Fatalf("year %d: yearly earnings %s, want 0", y.Year, y.YearlyEarnings)
		}
	}
}

func TestProject_ReturnEqualToFeesDegeneratesToZero(t *testing.T) {
	p := params(25000, 8, 3)
	p.Fees = decimal.NewFromInt(3)

	result := NewEngine().Project(p)
	assert.True(t, result.TotalEarnings.IsZero())
	assert.True(t, result.FinalAmount.Equal(result.TotalPrincipal))
}

func TestProject_OneYearTwelvePercent(t *testing.T) {
	// monthlyReturn is exactly 1%, so the expected figures are the plain
	// geometric series 10000 * (1.01 + ... + 1.01^12).
	result := NewEngine().Project(params(10000, 1, 12))

	require.Len(t, result.YearlyData, 1)
	y := result.YearlyData[0]
	assert.True(t, y.Principal.Equal(decimal.NewFromInt(120000)), "principal = %s", y.Principal)
	assert.True(t, y.Total.Equal(decimal.NewFromInt(128093)), "total = %s", y.Total)
	assert.True(t, y.Earnings.Equal(decimal.NewFromInt(8093)), "earnings = %s", y.Earnings)
	assert.True(t, y.YearlyEarnings.Equal(decimal.NewFromInt(8093)), "yearly earnings = %s", y.YearlyEarnings)
}

func TestProject_SecondYearContinuesFromExactBalance(t *testing.T) {
	result := NewEngine().Project(params(10000, 2, 12))

	require.Len(t, result.YearlyData, 2)
	y := result.YearlyData[1]
	assert.True(t, y.Principal.Equal(decimal.NewFromInt(240000)), "principal = %s", y.Principal)
	assert.True(t, y.Total.Equal(decimal.NewFromInt(272432)), "total = %s", y.Total)
	assert.True(t, y.Earnings.Equal(decimal.NewFromInt(32432)), "earnings = %s", y.Earnings)
	assert.True(t, y.YearlyEarnings.Equal(decimal.NewFromInt(24339)), "yearly earnings = %s", y.YearlyEarnings)
}

func TestProject_TwentyYearsAtFivePercent(t *testing.T) {
	result := NewEngine().Project(params(30000, 20, 5))

	assert.True(t, result.TotalPrincipal.Equal(decimal.NewFromInt(7200000)),
		"principal = %s", result.TotalPrincipal)
	assert.True(t, result.FinalAmount.Equal(decimal.NewFromInt(12382389)),
		"final = %s", result.FinalAmount)
	assert.True(t, result.FinalAmount.GreaterThan(result.TotalPrincipal))
	assert.True(t, result.YearlyData[0].Total.Equal(decimal.NewFromInt(369901)),
		"first year total = %s", result.YearlyData[0].Total)
}

func TestProject_SummaryMatchesLastYear(t *testing.T) {
	result := NewEngine().Project(params(33333, 20, 5))

	last := result.FinalYear()
	assert.True(t, result.FinalAmount.Equal(last.Total))
	assert.True(t, result.TotalPrincipal.Equal(last.Principal))
	assert.True(t, result.TotalEarnings.Equal(last.Earnings))
	assert.True(t, result.FinalAmount.Equal(result.TotalPrincipal.Add(result.TotalEarnings)))
}

func TestProject_MonotonicGrowth(t *testing.T) {
	result := NewEngine().Project(params(15000, 30, 4))

	if len(result.YearlyData) != 30 {
		t.Fatalf("yearly data length %d, want 30", len(result.YearlyData))
	}
	for i := 1; i < len(result.YearlyData); i++ {
		prev, cur := result.YearlyData[i-1], result.YearlyData[i]
		if !cur.Principal.GreaterThan(prev.Principal) {
			t.Fatalf("year %d: principal %s not greater than %s", cur.Year, cur.Principal, prev.Principal)
		}
		if !cur.Total.GreaterThan(prev.Total) {
			t.Fatalf("year %d: total %s not greater than %s", cur.Year, cur.Total, prev.Total)
		}
	}
}

func TestProject_HigherFeesStrictlyDecreaseFinalAmount(t *testing.T) {
	engine := NewEngine()

	base := params(30000, 20, 5)
	withFee := base
	withFee.Fees = decimal.NewFromInt(1)

	noFee := engine.Project(base)
	fee := engine.Project(withFee)

	assert.True(t, fee.FinalAmount.LessThan(noFee.FinalAmount),
		"fee %s should be below no-fee %s", fee.FinalAmount, noFee.FinalAmount)
	assert.True(t, fee.FinalAmount.Equal(decimal.NewFromInt(11039916)),
		"final with 1%% fee = %s", fee.FinalAmount)
}

func TestProject_PresetCatalog(t *testing.T) {
	engine := NewEngine()
	for _, preset := range domain.Presets() {
		result := engine.Project(preset.Params)

		wantPrincipal := preset.Params.MonthlyAmount.Mul(decimal.NewFromInt(12)).
			Mul(decimal.NewFromInt(int64(preset.Params.Years)))
		assert.True(t, result.TotalPrincipal.Equal(wantPrincipal),
			"%s: principal %s, want %s", preset.ID, result.TotalPrincipal, wantPrincipal)
		assert.True(t, result.FinalAmount.GreaterThan(result.TotalPrincipal),
			"%s: final %s not above principal %s", preset.ID, result.FinalAmount, result.TotalPrincipal)
	}
}
