package domain

import (
	"github.com/shopspring/decimal"
)

// SimulationParams holds the scalar inputs for one accumulation projection.
// Amounts are in yen; rates are in percent (5 means 5%).
type SimulationParams struct {
	MonthlyAmount decimal.Decimal `json:"monthly_amount" yaml:"monthly_amount"`
	Years         int             `json:"years" yaml:"years"`
	AnnualReturn  decimal.Decimal `json:"annual_return" yaml:"annual_return"`
	Fees          decimal.Decimal `json:"fees" yaml:"fees"`
	// TaxRate is accepted and validated for forward compatibility but is
	// not applied inside the compounding formula.
	TaxRate decimal.Decimal `json:"tax_rate" yaml:"tax_rate"`
}

// AnnualContribution returns the total contributed in one year.
func (p SimulationParams) AnnualContribution() decimal.Decimal {
	return p.MonthlyAmount.Mul(decimal.NewFromInt(12))
}

// EffectiveReturn returns the fee-adjusted annual return as a fraction.
func (p SimulationParams) EffectiveReturn() decimal.Decimal {
	return p.AnnualReturn.Sub(p.Fees).Div(decimal.NewFromInt(100))
}

// YearlyData is the reported snapshot for one elapsed year. All monetary
// fields are rounded to whole yen at the point of record creation; the
// engine's running accumulators are never rounded.
type YearlyData struct {
	Year           int             `json:"year"`
	Principal      decimal.Decimal `json:"principal"`
	Earnings       decimal.Decimal `json:"earnings"`
	Total          decimal.Decimal `json:"total"`
	YearlyEarnings decimal.Decimal `json:"yearly_earnings"`
}

// SimulationResult is the full outcome of one projection. The summary
// fields are taken verbatim from the last YearlyData entry, so
// FinalAmount == TotalPrincipal + TotalEarnings always holds.
type SimulationResult struct {
	FinalAmount    decimal.Decimal `json:"final_amount"`
	TotalPrincipal decimal.Decimal `json:"total_principal"`
	TotalEarnings  decimal.Decimal `json:"total_earnings"`
	YearlyData     []YearlyData    `json:"yearly_data"`
}

// FinalYear returns the last yearly snapshot, or a zero value for an
// empty projection.
func (r *SimulationResult) FinalYear() YearlyData {
	if len(r.YearlyData) == 0 {
		return YearlyData{}
	}
	return r.YearlyData[len(r.YearlyData)-1]
}

// RiskScenario bounds a base projection with shifted-return variants.
type RiskScenario struct {
	Optimistic  *SimulationResult `json:"optimistic"`
	Base        *SimulationResult `json:"base"`
	Pessimistic *SimulationResult `json:"pessimistic"`
}

// YearlyIncomeData is one year of the household cash-flow projection.
// Amounts are in income units (tens of thousands of yen); Savings is
// cumulative to date.
type YearlyIncomeData struct {
	Year        int             `json:"year"`
	GrossIncome decimal.Decimal `json:"gross_income"`
	NetIncome   decimal.Decimal `json:"net_income"`
	Expense     decimal.Decimal `json:"expense"`
	Savings     decimal.Decimal `json:"savings"`
}
