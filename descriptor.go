package slidedeck

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is where the deck configuration is looked up, relative
// to the deck root.
const DefaultConfigPath = "config/slides.json"

// Descriptor locates the markup source of one slide.
type Descriptor struct {
	// ID is the DOM id of the slide element, e.g. "slide-3".
	ID string `json:"id" yaml:"id"`

	// File is the fragment location relative to the deck root.
	File string `json:"file" yaml:"file"`
}

// DeckConfig is the parsed deck configuration. The order of Slides is the
// navigation order.
type DeckConfig struct {
	Title  string       `json:"title,omitempty" yaml:"title,omitempty"`
	Slides []Descriptor `json:"slides" yaml:"slides"`
}

// FallbackConfig returns the single-slide configuration used when the deck
// configuration cannot be loaded.
func FallbackConfig() DeckConfig {
	return DeckConfig{
		Slides: []Descriptor{
			{ID: "slide-0", File: "slides/slide-00-title.html"},
		},
	}
}

// ParseDeckConfig decodes a deck configuration. The format is picked from
// the extension of name: ".yaml" and ".yml" are YAML, anything else JSON.
func ParseDeckConfig(name string, data []byte) (DeckConfig, error) {
	var cfg DeckConfig
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DeckConfig{}, fmt.Errorf("slidedeck: parsing %s: %w", name, err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return DeckConfig{}, fmt.Errorf("slidedeck: parsing %s: %w", name, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return DeckConfig{}, fmt.Errorf("slidedeck: %s: %w", name, err)
	}
	return cfg, nil
}

// Validate checks that the configuration lists at least one slide and that
// every descriptor names a fragment.
func (c DeckConfig) Validate() error {
	if len(c.Slides) == 0 {
		return fmt.Errorf("no slides configured")
	}
	for i, d := range c.Slides {
		if d.File == "" {
			return fmt.Errorf("slide %d (%q) has no file", i, d.ID)
		}
	}
	return nil
}
