//go:build js && wasm

// Package dom backs the slide controller with the browser DOM.
package dom

import (
	"errors"
	"strconv"
	"strings"
	"syscall/js"

	"github.com/porticus-lab/slidedeck"
)

// Element ids the viewer page provides.
const (
	ContainerID    = "presentation-container"
	LoadingID      = "loading-indicator"
	PrevButtonID   = "prev-btn"
	NextButtonID   = "next-btn"
	CurrentSlideID = "current-slide"
	TotalSlidesID  = "total-slides"
	PrintingClass  = "printing"
)

// topLevelSlides matches slides that are not nested in another slide.
const topLevelSlides = ".slide:not(.slide .slide)"

// View implements slidedeck.View on the document.
type View struct {
	doc       js.Value
	container js.Value
	loading   js.Value
	prev      js.Value
	next      js.Value
	current   js.Value
	total     js.Value
}

// NewView looks up the viewer elements. Only the presentation container
// is required; missing controls are skipped.
func NewView() (*View, error) {
	doc := js.Global().Get("document")
	v := &View{
		doc:       doc,
		container: byID(doc, ContainerID),
		loading:   byID(doc, LoadingID),
		prev:      byID(doc, PrevButtonID),
		next:      byID(doc, NextButtonID),
		current:   byID(doc, CurrentSlideID),
		total:     byID(doc, TotalSlidesID),
	}
	if !present(v.container) {
		return nil, errors.New("dom: #" + ContainerID + " not found")
	}
	return v, nil
}

func byID(doc js.Value, id string) js.Value {
	return doc.Call("getElementById", id)
}

func present(v js.Value) bool {
	return !v.IsNull() && !v.IsUndefined()
}

func (v *View) slides() []js.Value {
	list := v.container.Call("querySelectorAll", topLevelSlides)
	out := make([]js.Value, list.Length())
	for i := range out {
		out[i] = list.Index(i)
	}
	return out
}

// Mount appends the fragments to the container in order and reads back
// the slides the browser parsed.
func (v *View) Mount(fragments []string) []slidedeck.Slide {
	v.container.Call("insertAdjacentHTML", "beforeend", strings.Join(fragments, "\n"))

	els := v.slides()
	slides := make([]slidedeck.Slide, len(els))
	for i, el := range els {
		slides[i] = slidedeck.Slide{
			ID:     el.Get("id").String(),
			Failed: el.Get("classList").Call("contains", slidedeck.ErrorClass).Bool(),
		}
	}
	return slides
}

func (v *View) HideLoading() {
	if present(v.loading) {
		v.loading.Get("style").Set("display", "none")
	}
}

func (v *View) ShowLoadError(msg string) {
	if present(v.loading) {
		v.loading.Set("textContent", msg)
	}
}

func (v *View) SetActive(index int) {
	for i, el := range v.slides() {
		el.Get("classList").Call("toggle", slidedeck.ActiveClass, i == index)
	}
}

func (v *View) SetCounters(current, total int) {
	if present(v.current) {
		v.current.Set("textContent", strconv.Itoa(current))
	}
	if present(v.total) {
		v.total.Set("textContent", strconv.Itoa(total))
	}
}

func (v *View) SetControlsEnabled(prev, next bool) {
	if present(v.prev) {
		v.prev.Set("disabled", !prev)
	}
	if present(v.next) {
		v.next.Set("disabled", !next)
	}
}

func (v *View) SetPrintMode(on bool) {
	v.doc.Get("body").Get("classList").Call("toggle", PrintingClass, on)
	for _, el := range v.slides() {
		el.Get("classList").Call("toggle", slidedeck.PrintVisibleClass, on)
	}
}

func (v *View) ToggleFullscreen() {
	if v.doc.Get("fullscreenElement").IsNull() {
		v.doc.Get("documentElement").Call("requestFullscreen")
		return
	}
	v.doc.Call("exitFullscreen")
}
