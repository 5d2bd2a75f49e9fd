package export

import "errors"

// Sentinel errors returned by the exporter.
var (
	// ErrClosed is returned when attempting to use a closed [Exporter].
	ErrClosed = errors.New("export: exporter is closed")

	// ErrUnknownStrategy is returned for a [Strategy] the exporter does not
	// implement.
	ErrUnknownStrategy = errors.New("export: unknown strategy")

	// ErrNoSlides is returned when the deck rendered no slides or the
	// requested range selected none.
	ErrNoSlides = errors.New("export: no slides to export")
)
