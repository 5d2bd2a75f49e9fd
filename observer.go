package slidedeck

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"
)

// Observer is notified of load and navigation. Observers are peripheral:
// the controller behaves identically with none registered.
type Observer interface {
	DeckLoaded(total int)
	SlideChanged(index, total int)
}

// PresentationTimer logs the elapsed presentation time at a fixed
// interval, starting when the deck has loaded.
type PresentationTimer struct {
	logger   *slog.Logger
	interval time.Duration

	mu    sync.Mutex
	start time.Time
	done  chan struct{}
}

// NewPresentationTimer returns a timer that logs through logger every
// interval. A non-positive interval means one second.
func NewPresentationTimer(logger *slog.Logger, interval time.Duration) *PresentationTimer {
	if logger == nil {
		logger = slog.Default()
	}
	if interval <= 0 {
		interval = time.Second
	}
	return &PresentationTimer{
		logger:   logger.With("component", "timer"),
		interval: interval,
	}
}

// DeckLoaded starts the timer.
func (t *PresentationTimer) DeckLoaded(int) { t.Start() }

// SlideChanged implements [Observer].
func (t *PresentationTimer) SlideChanged(int, int) {}

// Start (re)starts the timer from zero.
func (t *PresentationTimer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done != nil {
		close(t.done)
	}
	t.start = time.Now()
	t.done = make(chan struct{})
	go t.loop(t.done)
}

func (t *PresentationTimer) loop(done <-chan struct{}) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			t.logger.Info("presentation time", "elapsed", FormatElapsed(t.Elapsed()))
		}
	}
}

// Stop stops the timer. It is safe to call on a stopped timer.
func (t *PresentationTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done != nil {
		close(t.done)
		t.done = nil
	}
}

// Elapsed returns the time since Start, or zero if never started.
func (t *PresentationTimer) Elapsed() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.start.IsZero() {
		return 0
	}
	return time.Since(t.start)
}

// FormatElapsed renders d as minutes and zero-padded seconds, e.g. "12:05".
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int(d / time.Minute)
	seconds := int((d % time.Minute) / time.Second)
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// FlagStore persists boolean flags for the browsing session.
type FlagStore interface {
	Flag(key string) bool
	SetFlag(key string)
}

// MemoryFlags is a FlagStore kept in process memory.
type MemoryFlags struct {
	mu    sync.Mutex
	flags map[string]bool
}

// Flag reports whether key has been set.
func (m *MemoryFlags) Flag(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.flags[key]
}

// SetFlag sets key for the life of m.
func (m *MemoryFlags) SetFlag(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.flags == nil {
		m.flags = make(map[string]bool)
	}
	m.flags[key] = true
}

// InstructionsShownKey is the FlagStore key recording that the controls
// help has been shown.
const InstructionsShownKey = "instructionsShown"

const instructionsText = `Presentation Controls:
→ or Space: Next slide
←: Previous slide
Home: First slide
End: Last slide
F: Toggle fullscreen
0-9: Jump to slide
Ctrl+P: Print to PDF
`

// Instructions writes the keyboard help once per session.
type Instructions struct {
	w     io.Writer
	store FlagStore
}

// NewInstructions returns an observer writing the help to w, remembering
// in store that it did.
func NewInstructions(w io.Writer, store FlagStore) *Instructions {
	return &Instructions{w: w, store: store}
}

// DeckLoaded shows the help if it has not been shown this session.
func (i *Instructions) DeckLoaded(int) { i.Show() }

// SlideChanged implements [Observer].
func (i *Instructions) SlideChanged(int, int) {}

// Show writes the help unless already shown and reports whether it wrote.
// A failed write leaves the session flag unset so a later load retries.
func (i *Instructions) Show() bool {
	if i.store.Flag(InstructionsShownKey) {
		return false
	}
	if _, err := io.WriteString(i.w, instructionsText); err != nil {
		return false
	}
	i.store.SetFlag(InstructionsShownKey)
	return true
}
