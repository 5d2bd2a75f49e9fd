// Package config loads slidedeck settings from defaults, an optional YAML
// file and SLIDEDECK_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/porticus-lab/slidedeck/export"
)

// Load reads configuration from the YAML file at path, when it exists,
// then overlays environment overrides.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("config: reading %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config: accessing %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config: loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshalling: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshalling: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: writing %s: %w", path, err)
	}
	return nil
}

// envKey maps SLIDEDECK_EXPORT_PAGE_SIZE to export.page_size: the first
// segment names the section, the rest is the key.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, key, ok := strings.Cut(s, "_")
	if !ok {
		return s
	}
	return section + "." + key
}

var validOrientations = map[string]export.Orientation{
	"landscape": export.Landscape,
	"portrait":  export.Portrait,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	var errs []error

	if c.Deck.Root == "" {
		errs = append(errs, errors.New("deck.root is required"))
	}
	if c.Deck.ConfigPath == "" {
		errs = append(errs, errors.New("deck.config_path is required"))
	}
	if c.Deck.Concurrency < 0 {
		errs = append(errs, errors.New("deck.concurrency must be non-negative"))
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range", c.Server.Port))
	}

	e := c.Export
	if _, err := export.ParseStrategy(e.Strategy); err != nil {
		errs = append(errs, fmt.Errorf("export.strategy: %w", err))
	}
	if _, ok := export.PageSizeByName(strings.ToLower(e.PageSize)); !ok {
		errs = append(errs, fmt.Errorf("invalid export.page_size %q: must be one of a4, letter, legal, tabloid", e.PageSize))
	}
	if _, ok := validOrientations[strings.ToLower(e.Orientation)]; !ok {
		errs = append(errs, fmt.Errorf("invalid export.orientation %q: must be landscape or portrait", e.Orientation))
	}
	if e.ViewportWidth <= 0 || e.ViewportHeight <= 0 {
		errs = append(errs, fmt.Errorf("export viewport %dx%d must be positive", e.ViewportWidth, e.ViewportHeight))
	}
	if e.ScaleFactor <= 0 {
		errs = append(errs, errors.New("export.scale_factor must be positive"))
	}
	if e.SettleDelay < 0 || e.ReadyTimeout < 0 || e.Timeout < 0 {
		errs = append(errs, errors.New("export durations must be non-negative"))
	}
	if e.Output == "" {
		errs = append(errs, errors.New("export.output is required"))
	}
	return errors.Join(errs...)
}

// ExporterOptions converts the export section to exporter options.
func (e ExportConfig) ExporterOptions() []export.Option {
	opts := []export.Option{
		export.WithViewport(e.ViewportWidth, e.ViewportHeight, e.ScaleFactor),
		export.WithSettleDelay(e.SettleDelay),
		export.WithReadyTimeout(e.ReadyTimeout),
		export.WithTimeout(e.Timeout),
	}
	if e.ChromePath != "" {
		opts = append(opts, export.WithChromePath(e.ChromePath))
	}
	if e.NoSandbox {
		opts = append(opts, export.WithNoSandbox())
	}
	if e.AutoDownload {
		opts = append(opts, export.WithAutoDownload())
	}
	return opts
}

// Request converts the export section to an export request. Call
// Validate first; unknown values fall back to the export defaults.
func (e ExportConfig) Request() *export.Request {
	pg := export.DefaultPageConfig()
	if size, ok := export.PageSizeByName(strings.ToLower(e.PageSize)); ok {
		pg.Size = size
	}
	if o, ok := validOrientations[strings.ToLower(e.Orientation)]; ok {
		pg.Orientation = o
	}
	strategy, _ := export.ParseStrategy(e.Strategy)
	return &export.Request{
		Strategy: strategy,
		Page:     &pg,
		Slides:   e.Slides,
	}
}
