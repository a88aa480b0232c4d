package output

import (
	"bytes"
	"fmt"

	"github.com/tsumitate/nisa-calculator/internal/domain"
)

// ConsoleFormatter renders a plain-text report: the base projection year
// by year, then the risk band summary.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(scenario *domain.RiskScenario) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "ACCUMULATION PROJECTION")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "%-6s %16s %16s %16s %16s\n", "Year", "Principal", "Earnings", "Total", "YearEarnings")
	for _, y := range scenario.Base.YearlyData {
		fmt.Fprintf(&buf, "%-6d %16s %16s %16s %16s\n",
			y.Year,
			FormatCurrency(y.Principal),
			FormatCurrency(y.Earnings),
			FormatCurrency(y.Total),
			FormatCurrency(y.YearlyEarnings),
		)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "RISK BAND")
	for _, row := range []struct {
		label  string
		result *domain.SimulationResult
	}{
		{"Optimistic", scenario.Optimistic},
		{"Base", scenario.Base},
		{"Pessimistic", scenario.Pessimistic},
	} {
		fmt.Fprintf(&buf, "%-12s Final=%s Principal=%s Earnings=%s\n",
			row.label,
			FormatCurrency(row.result.FinalAmount),
			FormatCurrency(row.result.TotalPrincipal),
			FormatCurrency(row.result.TotalEarnings),
		)
	}
	return buf.Bytes(), nil
}
