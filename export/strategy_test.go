package export

import (
	"errors"
	"testing"
)

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in   string
		want Strategy
	}{
		{"", StrategyPrint},
		{"print", StrategyPrint},
		{"Screenshot", StrategyScreenshot},
		{" print-each ", StrategyPrintEach},
	}
	for _, tt := range tests {
		got, err := ParseStrategy(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseStrategy(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseStrategy("fax"); !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("ParseStrategy(fax) error = %v, want ErrUnknownStrategy", err)
	}
}
