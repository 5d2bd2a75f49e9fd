package slidedeck_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/porticus-lab/slidedeck"
)

// memView is an in-memory View recording what the controller asked for.
type memView struct {
	mounts        int
	slides        []slidedeck.Slide
	active        []bool
	printMode     bool
	current       int
	total         int
	prevEnabled   bool
	nextEnabled   bool
	loadingHidden bool
	loadError     string
	fullscreen    bool
}

func (v *memView) Mount(fragments []string) []slidedeck.Slide {
	v.mounts++
	slides, err := slidedeck.ParseSlides(strings.Join(fragments, "\n"))
	if err != nil {
		panic(err)
	}
	v.slides = append(v.slides, slides...)
	return slides
}

func (v *memView) HideLoading()             { v.loadingHidden = true }
func (v *memView) ShowLoadError(msg string) { v.loadError = msg }
func (v *memView) SetActive(index int) {
	v.active = make([]bool, len(v.slides))
	for i := range v.active {
		v.active[i] = i == index
	}
}
func (v *memView) SetCounters(cur, total int) {
	v.current, v.total = cur, total
}
func (v *memView) SetControlsEnabled(prev, next bool) {
	v.prevEnabled, v.nextEnabled = prev, next
}
func (v *memView) SetPrintMode(on bool) { v.printMode = on }
func (v *memView) ToggleFullscreen()    { v.fullscreen = !v.fullscreen }

// activeIDs returns the ids of the slides carrying the active state, in
// mount order.
func (v *memView) activeIDs() []string {
	var ids []string
	for i, on := range v.active {
		if on {
			ids = append(ids, v.slides[i].ID)
		}
	}
	return ids
}

// activeIndexes returns the positions of the slides carrying the active
// state.
func (v *memView) activeIndexes() []int {
	var idx []int
	for i, on := range v.active {
		if on {
			idx = append(idx, i)
		}
	}
	return idx
}

// visibleIDs returns the ids a viewer would see: every slide in print
// mode, otherwise the active ones.
func (v *memView) visibleIDs() []string {
	if !v.printMode {
		return v.activeIDs()
	}
	ids := make([]string, len(v.slides))
	for i, s := range v.slides {
		ids[i] = s.ID
	}
	return ids
}

type memLocation struct {
	hash string
	sets int
}

func (l *memLocation) Hash() string { return l.hash }
func (l *memLocation) SetHash(fragment string) {
	l.hash = "#" + fragment
	l.sets++
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testDeck builds a deck of n HTML slides; fragments at the missing
// indexes are listed in the configuration but absent from the tree.
func testDeck(n int, missing ...int) fstest.MapFS {
	skip := make(map[int]bool)
	for _, i := range missing {
		skip[i] = true
	}
	cfg := slidedeck.DeckConfig{Title: "Test deck"}
	fsys := fstest.MapFS{}
	for i := 0; i < n; i++ {
		d := slidedeck.Descriptor{
			ID:   fmt.Sprintf("slide-%d", i),
			File: fmt.Sprintf("slides/slide-%02d.html", i),
		}
		cfg.Slides = append(cfg.Slides, d)
		if skip[i] {
			continue
		}
		fsys[d.File] = &fstest.MapFile{
			Data: []byte(fmt.Sprintf(`<div class="slide" id="%s"><h1>Slide %d</h1></div>`, d.ID, i)),
		}
	}
	data, err := json.Marshal(cfg)
	if err != nil {
		panic(err)
	}
	fsys[slidedeck.DefaultConfigPath] = &fstest.MapFile{Data: data}
	return fsys
}

func newTestController(t *testing.T, fsys fstest.MapFS, opts ...slidedeck.ControllerOption) (*slidedeck.Controller, *memView, *memLocation) {
	t.Helper()
	view := &memView{}
	loc := &memLocation{}
	loader := slidedeck.NewLoader(slidedeck.FSFetcher{FS: fsys}, slidedeck.WithLoaderLogger(quietLogger()))
	opts = append([]slidedeck.ControllerOption{slidedeck.WithLogger(quietLogger())}, opts...)
	return slidedeck.NewController(view, loc, loader, opts...), view, loc
}

// loadedController returns a controller over fsys with navigation
// initialized, i.e. showing the first slide.
func loadedController(t *testing.T, fsys fstest.MapFS, opts ...slidedeck.ControllerOption) (*slidedeck.Controller, *memView, *memLocation) {
	t.Helper()
	c, view, loc := newTestController(t, fsys, opts...)
	if err := c.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if err := c.InitializeNavigation(); err != nil {
		t.Fatalf("InitializeNavigation: %v", err)
	}
	return c, view, loc
}
