package config

import (
	"time"

	"github.com/porticus-lab/slidedeck"
	"github.com/porticus-lab/slidedeck/export"
)

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() *Config {
	return &Config{
		Deck: DeckConfig{
			Root:       ".",
			ConfigPath: slidedeck.DefaultConfigPath,
		},
		Server: ServerConfig{
			Host: "localhost",
			Port: 8000,
		},
		Export: ExportConfig{
			Output:         "presentation.pdf",
			Strategy:       string(export.StrategyPrint),
			PageSize:       "letter",
			Orientation:    "landscape",
			ViewportWidth:  export.DefaultViewportWidth,
			ViewportHeight: export.DefaultViewportHeight,
			ScaleFactor:    export.DefaultScaleFactor,
			SettleDelay:    2 * time.Second,
			ReadyTimeout:   30 * time.Second,
			Timeout:        2 * time.Minute,
		},
	}
}
