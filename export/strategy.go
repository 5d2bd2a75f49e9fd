package export

import (
	"fmt"
	"strings"
)

// Strategy selects how slides are rendered to PDF.
type Strategy string

const (
	// StrategyPrint prints the whole deck once with the export stylesheet
	// forcing every selected slide onto its own page.
	StrategyPrint Strategy = "print"

	// StrategyScreenshot captures each slide as a viewport image and
	// assembles the images into pages.
	StrategyScreenshot Strategy = "screenshot"

	// StrategyPrintEach prints each slide on its own and merges the
	// single-page documents.
	StrategyPrintEach Strategy = "print-each"
)

// Strategies lists the implemented strategies.
func Strategies() []Strategy {
	return []Strategy{StrategyPrint, StrategyScreenshot, StrategyPrintEach}
}

// ParseStrategy converts a name such as "print-each" to a Strategy.
// The empty string selects StrategyPrint.
func ParseStrategy(name string) (Strategy, error) {
	if name == "" {
		return StrategyPrint, nil
	}
	s := Strategy(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Strategies() {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

func (s Strategy) String() string {
	return string(s)
}
