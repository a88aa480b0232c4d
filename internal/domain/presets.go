package domain

import "github.com/shopspring/decimal"

// Preset is a static catalog entry pairing a named strategy with
// ready-made simulation parameters. The catalog is read-only reference
// data; callers must not mutate returned entries.
type Preset struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Params      SimulationParams `json:"params"`
}

var presetCatalog = []Preset{
	{
		ID:          "nisa_standard",
		Name:        "つみたてNISA 満額",
		Description: "Monthly contribution at the tsumitate-NISA annual cap, 20 year horizon.",
		Params: SimulationParams{
			MonthlyAmount: decimal.NewFromInt(33333),
			Years:         20,
			AnnualReturn:  decimal.NewFromInt(5),
		},
	},
	{
		ID:          "conservative",
		Name:        "堅実プラン",
		Description: "Small contribution into low-volatility funds.",
		Params: SimulationParams{
			MonthlyAmount: decimal.NewFromInt(10000),
			Years:         15,
			AnnualReturn:  decimal.NewFromInt(3),
		},
	},
	{
		ID:          "aggressive",
		Name:        "積極プラン",
		Description: "Larger contribution into equity-heavy funds.",
		Params: SimulationParams{
			MonthlyAmount: decimal.NewFromInt(50000),
			Years:         25,
			AnnualReturn:  decimal.NewFromInt(7),
		},
	},
	{
		ID:          "retirement",
		Name:        "老後資金",
		Description: "Long-horizon balanced plan aimed at retirement funding.",
		Params: SimulationParams{
			MonthlyAmount: decimal.NewFromInt(20000),
			Years:         30,
			AnnualReturn:  decimal.NewFromInt(4),
		},
	},
}

// Presets returns the static preset catalog in display order.
func Presets() []Preset {
	return presetCatalog
}

// PresetByID looks up a preset by its identifier.
func PresetByID(id string) (Preset, bool) {
	for _, p := range presetCatalog {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}
