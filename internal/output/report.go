package output

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tsumitate/nisa-calculator/internal/domain"
)

// ErrUnsupportedFormat is returned when no formatter matches the
// requested name or alias.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// GenerateReport runs the named formatter and writes the result to a
// timestamped file in the working directory. The "console" format is
// written to stdout instead.
func GenerateReport(scenario *domain.RiskScenario, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)",
			ErrUnsupportedFormat, format,
			strings.Join(AvailableFormatterNames(), ", "),
			strings.Join(AvailableFormatAliases(), ", "))
	}

	if f.Name() == "console" {
		data, err := f.Format(scenario)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	ext := "txt"
	switch {
	case strings.Contains(f.Name(), "csv"):
		ext = "csv"
	case f.Name() == "json":
		ext = "json"
	}
	filename, err := WriteFormatted(f, scenario, ext)
	if err != nil {
		return err
	}
	fmt.Printf("Report written to %s\n", filename)
	return nil
}
