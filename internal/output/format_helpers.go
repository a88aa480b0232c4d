package output

import (
	"github.com/shopspring/decimal"

	money "github.com/tsumitate/nisa-calculator/pkg/decimal"
)

// FormatCurrency formats an amount as whole yen with the ¥ symbol and
// thousands separators, rounding half away from zero. Kept here so it
// can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatPercent formats a percent value with one fixed decimal place.
func FormatPercent(value decimal.Decimal) string {
	return value.StringFixed(1) + "%"
}
