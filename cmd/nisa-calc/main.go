package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tsumitate/nisa-calculator/internal/calculation"
	"github.com/tsumitate/nisa-calculator/internal/config"
	"github.com/tsumitate/nisa-calculator/internal/domain"
	"github.com/tsumitate/nisa-calculator/internal/output"
	"github.com/tsumitate/nisa-calculator/internal/server"
)

var (
	flagConfig  string
	flagPreset  string
	flagMonthly float64
	flagYears   int
	flagReturn  float64
	flagFees    float64
	flagFormat  string

	flagGross   float64
	flagBonus   float64
	flagExpense float64

	flagAddr string
)

var rootCmd = &cobra.Command{
	Use:   "nisa-calc",
	Short: "Accumulation investment and household cash-flow calculator",
	Long: "nisa-calc projects the future value of periodic investment contributions\n" +
		"under compound growth and the household savings that fund them.",
}

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Run a single accumulation projection",
	RunE:  runProject,
}

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Compare optimistic, base, and pessimistic projections",
	RunE:  runScenarios,
}

var incomeCmd = &cobra.Command{
	Use:   "income",
	Short: "Project household income, expenses, and savings",
	RunE:  runIncome,
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in parameter presets",
	RunE:  runPresets,
}

var exampleConfigCmd = &cobra.Command{
	Use:   "example-config [file]",
	Short: "Write a sample configuration file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExampleConfig,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculation engines as a JSON API",
	RunE:  runServe,
}

func init() {
	for _, cmd := range []*cobra.Command{projectCmd, scenariosCmd} {
		cmd.Flags().StringVarP(&flagConfig, "config", "c", "", "YAML configuration file")
		cmd.Flags().StringVarP(&flagPreset, "preset", "p", "", "Preset ID (see 'presets')")
		cmd.Flags().Float64VarP(&flagMonthly, "monthly", "m", 33333, "Monthly contribution in yen")
		cmd.Flags().IntVarP(&flagYears, "years", "y", 20, "Projection horizon in years")
		cmd.Flags().Float64VarP(&flagReturn, "return", "r", 5, "Expected annual return in percent")
		cmd.Flags().Float64Var(&flagFees, "fees", 0, "Annual fee drag in percent")
		cmd.Flags().StringVarP(&flagFormat, "format", "f", "console", "Output format (console, json, csv, detailed-csv)")
	}

	incomeCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "YAML configuration file")
	incomeCmd.Flags().Float64VarP(&flagGross, "gross", "g", 500, "Annual gross income in income units (man-yen)")
	incomeCmd.Flags().Float64VarP(&flagBonus, "bonus", "b", 0, "Annual bonus in income units")
	incomeCmd.Flags().Float64VarP(&flagExpense, "expense", "e", 20, "Monthly living expense in income units")
	incomeCmd.Flags().IntVarP(&flagYears, "years", "y", 20, "Projection horizon in years")

	serveCmd.Flags().StringVarP(&flagAddr, "addr", "a", ":8087", "Listen address")

	rootCmd.AddCommand(projectCmd, scenariosCmd, incomeCmd, presetsCmd, exampleConfigCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveParams builds simulation parameters from, in priority order:
// config file, preset, then raw flags.
func resolveParams() (domain.SimulationParams, error) {
	if flagConfig != "" {
		cfg, err := config.NewInputParser().LoadFromFile(flagConfig)
		if err != nil {
			return domain.SimulationParams{}, err
		}
		return cfg.Simulation, nil
	}
	if flagPreset != "" {
		preset, ok := domain.PresetByID(flagPreset)
		if !ok {
			return domain.SimulationParams{}, fmt.Errorf("unknown preset %q", flagPreset)
		}
		return preset.Params, nil
	}
	params := domain.SimulationParams{
		MonthlyAmount: decimal.NewFromFloat(flagMonthly),
		Years:         flagYears,
		AnnualReturn:  decimal.NewFromFloat(flagReturn),
		Fees:          decimal.NewFromFloat(flagFees),
	}
	if err := config.ValidateSimulationParams(params); err != nil {
		return domain.SimulationParams{}, err
	}
	return params, nil
}

func runProject(_ *cobra.Command, _ []string) error {
	params, err := resolveParams()
	if err != nil {
		return err
	}
	engine := calculation.NewEngine()
	result := engine.Project(params)

	fmt.Printf("%-6s %16s %16s %16s\n", "Year", "Principal", "Earnings", "Total")
	for _, y := range result.YearlyData {
		fmt.Printf("%-6d %16s %16s %16s\n",
			y.Year,
			output.FormatCurrency(y.Principal),
			output.FormatCurrency(y.Earnings),
			output.FormatCurrency(y.Total),
		)
	}
	fmt.Println()
	fmt.Printf("Final amount:    %s\n", output.FormatCurrency(result.FinalAmount))
	fmt.Printf("Total principal: %s\n", output.FormatCurrency(result.TotalPrincipal))
	fmt.Printf("Total earnings:  %s\n", output.FormatCurrency(result.TotalEarnings))
	return nil
}

func runScenarios(_ *cobra.Command, _ []string) error {
	params, err := resolveParams()
	if err != nil {
		return err
	}
	engine := calculation.NewEngine()
	return output.GenerateReport(engine.Scenarios(params), flagFormat)
}

func runIncome(_ *cobra.Command, _ []string) error {
	params := config.IncomeParams{
		GrossIncome:    decimal.NewFromFloat(flagGross),
		Bonus:          decimal.NewFromFloat(flagBonus),
		MonthlyExpense: decimal.NewFromFloat(flagExpense),
		Years:          flagYears,
	}
	if flagConfig != "" {
		cfg, err := config.NewInputParser().LoadFromFile(flagConfig)
		if err != nil {
			return err
		}
		params = cfg.Income
	}
	if err := config.ValidateIncomeParams(params); err != nil {
		return err
	}

	net := calculation.NetIncome(params.GrossIncome)
	fmt.Printf("Annual net income:  %s units\n", net)
	fmt.Printf("Monthly net income: %s units\n", calculation.MonthlyNetIncome(net))
	fmt.Printf("Savings rate:       %s\n", output.FormatPercent(calculation.SavingsRate(params.GrossIncome, params.Bonus, params.MonthlyExpense)))
	fmt.Println()
	fmt.Printf("%-6s %12s %12s %12s %12s\n", "Year", "Gross", "Net", "Expense", "Savings")
	for _, y := range calculation.YearlyIncomeSeries(params.GrossIncome, params.Bonus, params.MonthlyExpense, params.Years) {
		fmt.Printf("%-6d %12s %12s %12s %12s\n", y.Year, y.GrossIncome, y.NetIncome, y.Expense, y.Savings)
	}
	return nil
}

func runPresets(_ *cobra.Command, _ []string) error {
	for _, p := range domain.Presets() {
		fmt.Printf("%-14s %s\n", p.ID, p.Name)
		fmt.Printf("               monthly=%s years=%d return=%s%%\n",
			output.FormatCurrency(p.Params.MonthlyAmount), p.Params.Years, p.Params.AnnualReturn)
		fmt.Printf("               %s\n", p.Description)
	}
	return nil
}

func runExampleConfig(_ *cobra.Command, args []string) error {
	filename := "nisa-calc.yaml"
	if len(args) == 1 {
		filename = args[0]
	}
	if err := config.NewInputParser().WriteExampleConfiguration(filename); err != nil {
		return err
	}
	fmt.Printf("Example configuration written to %s\n", filename)
	return nil
}

func runServe(_ *cobra.Command, _ []string) error {
	return server.New(calculation.NewEngine()).ListenAndServe(flagAddr)
}
