package main

import (
	"fmt"
	"os"

	calc "github.com/tsumitate/nisa-calculator/internal/calculation"
	"github.com/tsumitate/nisa-calculator/internal/config"
)

// Debug helper: dump the full yearly projection for a config file as CSV,
// with the risk band columns side by side.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: print_projection <config-file>")
		return
	}
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}

	engine := calc.NewEngine()
	scenario := engine.Scenarios(cfg.Simulation)

	fmt.Println("Year,Principal,Base,Optimistic,Pessimistic,BaseYearlyEarnings")
	for i, y := range scenario.Base.YearlyData {
		fmt.Printf("%d,%s,%s,%s,%s,%s\n",
			y.Year,
			y.Principal.StringFixed(0),
			y.Total.StringFixed(0),
			scenario.Optimistic.YearlyData[i].Total.StringFixed(0),
			scenario.Pessimistic.YearlyData[i].Total.StringFixed(0),
			y.YearlyEarnings.StringFixed(0),
		)
	}

	fmt.Printf("\nFinal: base=%s optimistic=%s pessimistic=%s\n",
		scenario.Base.FinalAmount.StringFixed(0),
		scenario.Optimistic.FinalAmount.StringFixed(0),
		scenario.Pessimistic.FinalAmount.StringFixed(0),
	)
}
