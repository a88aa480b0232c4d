package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/tsumitate/nisa-calculator/internal/domain"
)

// Configuration is the file-level input: one investment simulation block
// and one household income block.
type Configuration struct {
	Simulation domain.SimulationParams `yaml:"simulation" json:"simulation"`
	Income     IncomeParams            `yaml:"income" json:"income"`
}

// IncomeParams holds the cash-flow projection inputs. Amounts are in
// income units (tens of thousands of yen).
type IncomeParams struct {
	GrossIncome    decimal.Decimal `yaml:"gross_income" json:"gross_income"`
	Bonus          decimal.Decimal `yaml:"bonus" json:"bonus"`
	MonthlyExpense decimal.Decimal `yaml:"monthly_expense" json:"monthly_expense"`
	Years          int             `yaml:"years" json:"years"`
}

// InputParser handles parsing of input configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration enforces the input contract the calculation
// engines themselves do not check.
func (ip *InputParser) ValidateConfiguration(config *Configuration) error {
	if err := ValidateSimulationParams(config.Simulation); err != nil {
		return fmt.Errorf("simulation validation failed: %w", err)
	}
	if err := ValidateIncomeParams(config.Income); err != nil {
		return fmt.Errorf("income validation failed: %w", err)
	}
	return nil
}

// ValidateSimulationParams validates one set of projection inputs.
func ValidateSimulationParams(params domain.SimulationParams) error {
	if params.MonthlyAmount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("monthly amount must be positive")
	}
	if params.Years < 1 || params.Years > 100 {
		return fmt.Errorf("years must be between 1 and 100")
	}
	if params.AnnualReturn.LessThan(decimal.NewFromInt(-100)) {
		return fmt.Errorf("annual return cannot be less than -100%%")
	}
	if params.Fees.IsNegative() {
		return fmt.Errorf("fees cannot be negative")
	}
	if params.TaxRate.IsNegative() {
		return fmt.Errorf("tax rate cannot be negative")
	}
	return nil
}

// ValidateIncomeParams validates the cash-flow projection inputs.
func ValidateIncomeParams(params IncomeParams) error {
	if params.GrossIncome.IsNegative() {
		return fmt.Errorf("gross income cannot be negative")
	}
	if params.Bonus.IsNegative() {
		return fmt.Errorf("bonus cannot be negative")
	}
	if params.MonthlyExpense.IsNegative() {
		return fmt.Errorf("monthly expense cannot be negative")
	}
	if params.Years < 1 || params.Years > 100 {
		return fmt.Errorf("years must be between 1 and 100")
	}
	return nil
}

// CreateExampleConfiguration creates a ready-to-edit sample configuration.
func (ip *InputParser) CreateExampleConfiguration() *Configuration {
	return &Configuration{
		Simulation: domain.SimulationParams{
			MonthlyAmount: decimal.NewFromInt(33333),
			Years:         20,
			AnnualReturn:  decimal.NewFromInt(5),
			Fees:          decimal.NewFromFloat(0.2),
			TaxRate:       decimal.NewFromFloat(20.315),
		},
		Income: IncomeParams{
			GrossIncome:    decimal.NewFromInt(600),
			Bonus:          decimal.NewFromInt(100),
			MonthlyExpense: decimal.NewFromInt(20),
			Years:          20,
		},
	}
}

// WriteExampleConfiguration marshals the sample configuration to a file.
func (ip *InputParser) WriteExampleConfiguration(filename string) error {
	data, err := yaml.Marshal(ip.CreateExampleConfiguration())
	if err != nil {
		return fmt.Errorf("failed to marshal example configuration: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
