package config

import "time"

// DefaultFile is the configuration file looked up in the working
// directory.
const DefaultFile = ".slidedeck.yml"

// EnvPrefix prefixes environment overrides: SLIDEDECK_SERVER_PORT sets
// server.port.
const EnvPrefix = "SLIDEDECK_"

// Config is the top-level configuration, corresponding to .slidedeck.yml.
type Config struct {
	Deck   DeckConfig   `yaml:"deck" koanf:"deck"`
	Server ServerConfig `yaml:"server" koanf:"server"`
	Export ExportConfig `yaml:"export" koanf:"export"`
}

// DeckConfig locates the deck.
type DeckConfig struct {
	Root        string `yaml:"root" koanf:"root"`
	ConfigPath  string `yaml:"config_path" koanf:"config_path"`
	Concurrency int    `yaml:"concurrency" koanf:"concurrency"`
}

// ServerConfig controls `slidedeck serve`.
type ServerConfig struct {
	Host      string `yaml:"host" koanf:"host"`
	Port      int    `yaml:"port" koanf:"port"`
	Watch     bool   `yaml:"watch" koanf:"watch"`
	ViewerDir string `yaml:"viewer_dir" koanf:"viewer_dir"`
	AllowAll  bool   `yaml:"allow_all" koanf:"allow_all"`
}

// ExportConfig controls `slidedeck export`.
type ExportConfig struct {
	Output         string        `yaml:"output" koanf:"output"`
	Strategy       string        `yaml:"strategy" koanf:"strategy"`
	Slides         string        `yaml:"slides" koanf:"slides"`
	PageSize       string        `yaml:"page_size" koanf:"page_size"`
	Orientation    string        `yaml:"orientation" koanf:"orientation"`
	ViewportWidth  int64         `yaml:"viewport_width" koanf:"viewport_width"`
	ViewportHeight int64         `yaml:"viewport_height" koanf:"viewport_height"`
	ScaleFactor    float64       `yaml:"scale_factor" koanf:"scale_factor"`
	SettleDelay    time.Duration `yaml:"settle_delay" koanf:"settle_delay"`
	ReadyTimeout   time.Duration `yaml:"ready_timeout" koanf:"ready_timeout"`
	Timeout        time.Duration `yaml:"timeout" koanf:"timeout"`
	ChromePath     string        `yaml:"chrome_path" koanf:"chrome_path"`
	NoSandbox      bool          `yaml:"no_sandbox" koanf:"no_sandbox"`
	AutoDownload   bool          `yaml:"auto_download" koanf:"auto_download"`
}
