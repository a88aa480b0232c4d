package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/tsumitate/nisa-calculator/internal/domain"
)

// Flat deduction brackets for the net-income approximation, evaluated
// highest threshold first. This is a deliberate step function: crossing
// a threshold changes the rate applied to the entire amount. It is an
// approximation, not a marginal tax schedule.
var (
	upperBracketThreshold  = decimal.NewFromInt(1000)
	middleBracketThreshold = decimal.NewFromInt(600)

	upperDeductionRate  = decimal.NewFromFloat(0.25)
	middleDeductionRate = decimal.NewFromFloat(0.22)
	lowerDeductionRate  = decimal.NewFromFloat(0.20)
)

// All amounts in this file are income units (tens of thousands of yen).

// NetIncome approximates annual net income from gross via the flat
// deduction brackets, rounded to the nearest whole unit.
func NetIncome(gross decimal.Decimal) decimal.Decimal {
	var rate decimal.Decimal
	switch {
	case gross.GreaterThanOrEqual(upperBracketThreshold):
		rate = upperDeductionRate
	case gross.GreaterThanOrEqual(middleBracketThreshold):
		rate = middleDeductionRate
	default:
		rate = lowerDeductionRate
	}
	return gross.Mul(one.Sub(rate)).Round(0)
}

// MonthlyNetIncome splits annual net income into a monthly figure,
// rounded to one decimal place.
func MonthlyNetIncome(netIncome decimal.Decimal) decimal.Decimal {
	return netIncome.Div(twelve).Round(1)
}

// TotalIncome is cumulative gross income plus bonus over the horizon.
func TotalIncome(gross, bonus decimal.Decimal, years int) decimal.Decimal {
	return gross.Add(bonus).Mul(decimal.NewFromInt(int64(years)))
}

// TotalExpense is cumulative living expense over the horizon.
func TotalExpense(monthlyExpense decimal.Decimal, years int) decimal.Decimal {
	return monthlyExpense.Mul(twelve).Mul(decimal.NewFromInt(int64(years)))
}

// Savings is cumulative savings over the horizon, floored at zero.
func Savings(gross, bonus, monthlyExpense decimal.Decimal, years int) decimal.Decimal {
	horizon := decimal.NewFromInt(int64(years))
	income := NetIncome(gross).Add(bonus).Mul(horizon)
	expense := monthlyExpense.Mul(twelve).Mul(horizon)
	return decimal.Max(decimal.Zero, income.Sub(expense))
}

// SavingsRate is the share of annual net income left after expenses, as
// a whole percent floored at zero. A zero annual net income yields 0.
func SavingsRate(gross, bonus, monthlyExpense decimal.Decimal) decimal.Decimal {
	annualNet := NetIncome(gross).Add(bonus)
	if annualNet.IsZero() {
		return decimal.Zero
	}
	annualExpense := monthlyExpense.Mul(twelve)
	rate := annualNet.Sub(annualExpense).Div(annualNet).Mul(hundred).Round(0)
	return decimal.Max(decimal.Zero, rate)
}

// YearlyIncomeSeries projects household cash flow year by year. Income
// and expense are held constant across the horizon (no growth or
// inflation modeling); the savings column is cumulative and increases
// by max(0, annual net - annual expense) each year.
func YearlyIncomeSeries(gross, bonus, monthlyExpense decimal.Decimal, years int) []domain.YearlyIncomeData {
	annualGross := gross.Add(bonus)
	annualNet := NetIncome(gross).Add(bonus)
	annualExpense := monthlyExpense.Mul(twelve)
	increment := decimal.Max(decimal.Zero, annualNet.Sub(annualExpense))

	series := make([]domain.YearlyIncomeData, 0, years)
	cumulative := decimal.Zero
	for year := 1; year <= years; year++ {
		cumulative = cumulative.Add(increment)
		series = append(series, domain.YearlyIncomeData{
			Year:        year,
			GrossIncome: annualGross,
			NetIncome:   annualNet,
			Expense:     annualExpense,
			Savings:     cumulative,
		})
	}
	return series
}
