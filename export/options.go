package export

import (
	"log/slog"
	"time"
)

// Default viewport of the export tab. 1056x816 CSS pixels is US Letter
// landscape at 96 dpi.
const (
	DefaultViewportWidth  = 1056
	DefaultViewportHeight = 816
	DefaultScaleFactor    = 2.0
)

// exporterConfig holds internal configuration for an Exporter.
type exporterConfig struct {
	chromePath   string
	timeout      time.Duration
	noSandbox    bool
	headless     string
	autoDownload bool

	viewportWidth  int64
	viewportHeight int64
	scaleFactor    float64

	settleDelay  time.Duration
	slideSettle  time.Duration
	readyTimeout time.Duration

	logger *slog.Logger
}

func defaultConfig() exporterConfig {
	return exporterConfig{
		timeout:        2 * time.Minute,
		headless:       "new",
		viewportWidth:  DefaultViewportWidth,
		viewportHeight: DefaultViewportHeight,
		scaleFactor:    DefaultScaleFactor,
		settleDelay:    2 * time.Second,
		slideSettle:    500 * time.Millisecond,
		readyTimeout:   30 * time.Second,
	}
}

// Option configures an [Exporter].
type Option func(*exporterConfig)

// WithChromePath sets the path to the Chrome or Chromium executable.
// By default chromedp searches standard locations.
func WithChromePath(path string) Option {
	return func(c *exporterConfig) {
		c.chromePath = path
	}
}

// WithTimeout sets the maximum duration for a single export.
// Defaults to 2 minutes. A zero or negative value disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *exporterConfig) {
		c.timeout = d
	}
}

// WithNoSandbox disables the Chrome sandbox. This is required when
// running as root, for example inside Docker containers.
func WithNoSandbox() Option {
	return func(c *exporterConfig) {
		c.noSandbox = true
	}
}

// WithAutoDownload fetches a Chromium build when no executable path is
// configured. Downloads are cached between runs.
func WithAutoDownload() Option {
	return func(c *exporterConfig) {
		c.autoDownload = true
	}
}

// WithViewport sets the tab's viewport in CSS pixels and its device scale
// factor. Non-positive values keep the defaults.
func WithViewport(width, height int64, scale float64) Option {
	return func(c *exporterConfig) {
		if width > 0 {
			c.viewportWidth = width
		}
		if height > 0 {
			c.viewportHeight = height
		}
		if scale > 0 {
			c.scaleFactor = scale
		}
	}
}

// WithSettleDelay sets how long to wait after the deck reports ready
// before capturing, giving fonts, images and transitions time to finish.
func WithSettleDelay(d time.Duration) Option {
	return func(c *exporterConfig) {
		c.settleDelay = d
	}
}

// WithReadyTimeout bounds how long the exporter waits for the deck's
// slides to appear.
func WithReadyTimeout(d time.Duration) Option {
	return func(c *exporterConfig) {
		c.readyTimeout = d
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *exporterConfig) {
		c.logger = l
	}
}
