package slidedeck

import (
	"context"
	"math"
)

// Event is an input the controller reacts to. The concrete types are
// [KeyEvent], [ClickEvent], [TouchStart], [TouchEnd], [HashChange],
// [BeforePrint] and [AfterPrint].
type Event interface {
	event()
}

// KeyEvent is a key press, identified by its DOM KeyboardEvent.key value.
type KeyEvent struct {
	Key string
}

// Control identifies a navigation button.
type Control int

const (
	ControlPrev Control = iota
	ControlNext
)

// ClickEvent is a click on a navigation button.
type ClickEvent struct {
	Control Control
}

// TouchStart records where a touch began, in screen pixels.
type TouchStart struct {
	X float64
}

// TouchEnd records where a touch ended, in screen pixels.
type TouchEnd struct {
	X float64
}

// HashChange reports a URL fragment change made outside the controller.
type HashChange struct {
	Hash string
}

// BeforePrint is sent before the page is printed.
type BeforePrint struct{}

// AfterPrint is sent after printing finished or was cancelled.
type AfterPrint struct{}

func (KeyEvent) event()    {}
func (ClickEvent) event()  {}
func (TouchStart) event()  {}
func (TouchEnd) event()    {}
func (HashChange) event()  {}
func (BeforePrint) event() {}
func (AfterPrint) event()  {}

// IsNavigationKey reports whether key is consumed by the controller in a
// way that should suppress the browser default (scrolling on space and
// arrows, jumping on Home/End).
func IsNavigationKey(key string) bool {
	switch key {
	case "ArrowRight", " ", "ArrowLeft", "Home", "End":
		return true
	}
	return false
}

// HandleEvent applies one input event. Navigation events are ignored until
// [Controller.InitializeNavigation] has run; print events always apply.
func (c *Controller) HandleEvent(ev Event) {
	switch ev.(type) {
	case BeforePrint:
		c.BeforePrint()
		return
	case AfterPrint:
		c.AfterPrint()
		return
	}
	if !c.navReady {
		return
	}

	switch e := ev.(type) {
	case KeyEvent:
		c.HandleKey(e.Key)
	case ClickEvent:
		switch e.Control {
		case ControlPrev:
			c.PrevSlide()
		case ControlNext:
			c.NextSlide()
		}
	case TouchStart:
		c.touchStartX = e.X
	case TouchEnd:
		c.handleSwipe(e.X)
	case HashChange:
		c.HandleHashChange(e.Hash)
	}
}

// HandleKey applies a key press and reports whether the key was one the
// controller acts on.
func (c *Controller) HandleKey(key string) bool {
	switch key {
	case "ArrowRight", " ":
		c.NextSlide()
		return true
	case "ArrowLeft":
		c.PrevSlide()
		return true
	case "Home":
		c.FirstSlide()
		return true
	case "End":
		c.LastSlide()
		return true
	case "f", "F":
		c.view.ToggleFullscreen()
		return true
	}
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		if n := int(key[0] - '0'); n < len(c.slides) {
			c.ShowSlide(n)
		}
		return true
	}
	return false
}

func (c *Controller) handleSwipe(endX float64) {
	diff := c.touchStartX - endX
	if math.Abs(diff) <= c.swipeThreshold {
		return
	}
	if diff > 0 {
		c.NextSlide()
	} else {
		c.PrevSlide()
	}
}

// Run handles events until ctx is done or events is closed. It is the
// controller's event loop: every state mutation after loading happens on
// the goroutine calling Run.
func (c *Controller) Run(ctx context.Context, events <-chan Event) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			c.HandleEvent(ev)
		}
	}
}
