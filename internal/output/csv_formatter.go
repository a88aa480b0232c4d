package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/tsumitate/nisa-calculator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(scenario *domain.RiskScenario) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "FinalAmount", "TotalPrincipal", "TotalEarnings", "Years"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range scenarioRows(scenario) {
		record := []string{
			row.label,
			row.result.FinalAmount.StringFixed(0),
			row.result.TotalPrincipal.StringFixed(0),
			row.result.TotalEarnings.StringFixed(0),
			strconv.Itoa(len(row.result.YearlyData)),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// CSVDetailedExporter writes one row per year per scenario.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(scenario *domain.RiskScenario) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Year", "Principal", "Earnings", "Total", "YearlyEarnings"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range scenarioRows(scenario) {
		for _, y := range row.result.YearlyData {
			record := []string{
				row.label,
				strconv.Itoa(y.Year),
				y.Principal.StringFixed(0),
				y.Earnings.StringFixed(0),
				y.Total.StringFixed(0),
				y.YearlyEarnings.StringFixed(0),
			}
			if err := w.Write(record); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

type labeledResult struct {
	label  string
	result *domain.SimulationResult
}

func scenarioRows(scenario *domain.RiskScenario) []labeledResult {
	return []labeledResult{
		{"optimistic", scenario.Optimistic},
		{"base", scenario.Base},
		{"pessimistic", scenario.Pessimistic},
	}
}
