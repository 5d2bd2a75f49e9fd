package slidedeck

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the package.
var (
	// ErrNotLoaded is returned by operations that need a loaded deck.
	ErrNotLoaded = errors.New("slidedeck: deck is not loaded")

	// ErrNavigationInitialized is returned when [Controller.InitializeNavigation]
	// is called more than once.
	ErrNavigationInitialized = errors.New("slidedeck: navigation already initialized")

	// ErrPathEscape is returned by [FSFetcher] for names that resolve
	// outside the deck root.
	ErrPathEscape = errors.New("slidedeck: path escapes deck root")
)

// StatusError reports a fetch that completed with a non-success HTTP status.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("slidedeck: fetching %s: %s", e.URL, e.Status)
}
