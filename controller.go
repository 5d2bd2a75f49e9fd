package slidedeck

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
)

// View is the presentation surface the controller drives. In the browser
// it is backed by the DOM; tests use an in-memory implementation.
type View interface {
	// Mount inserts the fragments into the presentation container, in
	// order, and returns the slides found in the container afterwards.
	Mount(fragments []string) []Slide

	// HideLoading hides the loading indicator.
	HideLoading()

	// ShowLoadError replaces the loading indicator text with msg.
	ShowLoadError(msg string)

	// SetActive clears the active state of every slide and marks the
	// slide at index, in the order Mount reported, active. Slide ids may
	// be empty or repeated.
	SetActive(index int)

	// SetCounters updates the "current / total" display; current is 1-based.
	SetCounters(current, total int)

	// SetControlsEnabled enables or disables the previous and next controls.
	SetControlsEnabled(prev, next bool)

	// SetPrintMode forces every slide visible when on is true.
	SetPrintMode(on bool)

	ToggleFullscreen()
}

// Location is the URL fragment the current slide is mirrored to.
type Location interface {
	Hash() string
	SetHash(fragment string)
}

// State is a snapshot of the presentation state.
type State struct {
	Slides   []Slide
	Current  int
	Loaded   bool
	Printing bool
}

// DefaultSwipeThreshold is the horizontal touch displacement, in pixels,
// beyond which a swipe changes slides.
const DefaultSwipeThreshold = 50

// ControllerOption configures a [Controller].
type ControllerOption func(*Controller)

// WithLogger sets the controller's logger. Defaults to [slog.Default].
func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithObserver registers an observer of load and navigation events.
func WithObserver(o Observer) ControllerOption {
	return func(c *Controller) {
		c.observers = append(c.observers, o)
	}
}

// WithSwipeThreshold overrides [DefaultSwipeThreshold].
func WithSwipeThreshold(px float64) ControllerOption {
	return func(c *Controller) {
		c.swipeThreshold = px
	}
}

// Controller owns the presentation state and keeps the view, the URL
// fragment and the navigation controls consistent with it.
//
// A Controller is not safe for concurrent use. All methods must be called
// from one goroutine, normally the one running [Controller.Run]; LoadAll
// fans out internally but mutates state only after its fetches complete.
type Controller struct {
	view      View
	loc       Location
	loader    *Loader
	logger    *slog.Logger
	observers []Observer

	swipeThreshold float64
	touchStartX    float64

	slides   []Slide
	current  int
	loaded   bool
	printing bool
	navReady bool
}

// NewController returns a controller for the deck served through loader.
func NewController(view View, loc Location, loader *Loader, opts ...ControllerOption) *Controller {
	c := &Controller{
		view:           view,
		loc:            loc,
		loader:         loader,
		logger:         slog.Default(),
		swipeThreshold: DefaultSwipeThreshold,
	}
	for _, o := range opts {
		o(c)
	}
	c.logger = c.logger.With("component", "controller")
	return c
}

// LoadAll loads the deck, mounts every fragment into the view in
// descriptor order and marks the presentation loaded. Fetch failures
// degrade to a fallback configuration or placeholder slides; the only
// error returned is ctx's. Calling LoadAll on a loaded controller does
// nothing.
func (c *Controller) LoadAll(ctx context.Context) error {
	if c.loaded {
		return nil
	}
	deck, err := c.loader.Load(ctx)
	if err != nil {
		c.view.ShowLoadError("Error loading presentation. Please refresh the page.")
		return fmt.Errorf("slidedeck: loading deck: %w", err)
	}

	c.view.HideLoading()
	c.slides = c.view.Mount(deck.Markup())
	c.loaded = true

	c.logger.Info("slides loaded", "total", len(c.slides), "failed", len(deck.Failed()))
	for _, o := range c.observers {
		o.DeckLoaded(len(c.slides))
	}
	return nil
}

// ShowSlide makes the slide at index the active one. It does nothing
// before the deck is loaded or when index is out of range.
func (c *Controller) ShowSlide(index int) {
	if !c.loaded || index < 0 || index >= len(c.slides) {
		return
	}
	c.view.SetActive(index)
	c.current = index
	c.updateNavigation()
	c.loc.SetHash(SlideHash(index))

	for _, o := range c.observers {
		o.SlideChanged(index, len(c.slides))
	}
}

func (c *Controller) updateNavigation() {
	total := len(c.slides)
	c.view.SetCounters(c.current+1, total)
	c.view.SetControlsEnabled(c.current > 0, c.current < total-1)
}

// NextSlide advances one slide; it does nothing on the last slide.
func (c *Controller) NextSlide() { c.ShowSlide(c.current + 1) }

// PrevSlide goes back one slide; it does nothing on the first slide.
func (c *Controller) PrevSlide() { c.ShowSlide(c.current - 1) }

// FirstSlide shows the first slide.
func (c *Controller) FirstSlide() { c.ShowSlide(0) }

// LastSlide shows the last slide.
func (c *Controller) LastSlide() { c.ShowSlide(len(c.slides) - 1) }

// InitializeNavigation enables input handling and shows the slide named
// by the URL fragment. It must be called once, after LoadAll.
func (c *Controller) InitializeNavigation() error {
	if !c.loaded {
		return ErrNotLoaded
	}
	if c.navReady {
		return ErrNavigationInitialized
	}
	c.navReady = true
	c.CheckInitialSlide()
	return nil
}

// CheckInitialSlide shows the slide encoded in the URL fragment, or the
// first slide if the fragment names none or an invalid one.
func (c *Controller) CheckInitialSlide() {
	if i, ok := ParseSlideHash(c.loc.Hash()); ok && i < len(c.slides) {
		c.ShowSlide(i)
		return
	}
	c.ShowSlide(0)
}

// HandleHashChange re-synchronizes with an externally changed URL
// fragment, e.g. after the browser's back button.
func (c *Controller) HandleHashChange(hash string) {
	i, ok := ParseSlideHash(hash)
	if !ok || i >= len(c.slides) || i == c.current {
		return
	}
	c.ShowSlide(i)
}

// BeforePrint forces every slide visible so a full-document print shows
// the whole deck.
func (c *Controller) BeforePrint() {
	c.printing = true
	c.view.SetPrintMode(true)
	c.logger.Debug("print mode on")
}

// AfterPrint restores single-slide visibility.
func (c *Controller) AfterPrint() {
	c.view.SetPrintMode(false)
	c.printing = false
	c.ShowSlide(c.current)
	c.logger.Debug("print mode off")
}

// State returns a snapshot of the presentation state.
func (c *Controller) State() State {
	slides := make([]Slide, len(c.slides))
	copy(slides, c.slides)
	return State{
		Slides:   slides,
		Current:  c.current,
		Loaded:   c.loaded,
		Printing: c.printing,
	}
}

// CurrentIndex returns the zero-based index of the active slide.
func (c *Controller) CurrentIndex() int { return c.current }

// TotalSlides returns the number of loaded slides.
func (c *Controller) TotalSlides() int { return len(c.slides) }

// Loaded reports whether LoadAll has completed.
func (c *Controller) Loaded() bool { return c.loaded }

var slideHashRE = regexp.MustCompile(`slide-(\d+)`)

// SlideHash returns the URL fragment, without '#', for slide index.
func SlideHash(index int) string {
	return "slide-" + strconv.Itoa(index)
}

// ParseSlideHash extracts the slide index from a URL fragment such as
// "#slide-4". The leading '#' is optional.
func ParseSlideHash(hash string) (int, bool) {
	m := slideHashRE.FindStringSubmatch(hash)
	if m == nil {
		return 0, false
	}
	i, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return i, true
}
