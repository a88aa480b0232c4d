package output

import (
	"encoding/json"

	"github.com/tsumitate/nisa-calculator/internal/domain"
)

// JSONFormatter serializes the risk scenario as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(scenario *domain.RiskScenario) ([]byte, error) {
	return json.MarshalIndent(scenario, "", "  ")
}
