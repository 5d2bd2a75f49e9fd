package export_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os/exec"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/porticus-lab/slidedeck/export"
)

// chromeAvailable reports whether a Chrome/Chromium executable is in PATH.
func chromeAvailable() bool {
	for _, name := range []string{
		"chromium-browser", "chromium", "google-chrome",
		"google-chrome-stable", "chrome",
	} {
		if _, err := exec.LookPath(name); err == nil {
			return true
		}
	}
	return false
}

func skipIfNoChrome(t *testing.T) {
	t.Helper()
	if !chromeAvailable() {
		t.Skip("skipping: Chrome/Chromium not found in PATH")
	}
}

func newTestExporter(t *testing.T) *export.Exporter {
	t.Helper()
	skipIfNoChrome(t)
	e, err := export.NewExporter(
		export.WithNoSandbox(),
		export.WithSettleDelay(100*time.Millisecond),
		export.WithReadyTimeout(10*time.Second),
	)
	if err != nil {
		t.Fatalf("NewExporter: %v", err)
	}
	t.Cleanup(func() { e.Close() })
	return e
}

// serveDeck serves a page that mounts n slides after a short delay, the
// way the viewer does once its fragments arrive.
func serveDeck(t *testing.T, n int) string {
	t.Helper()
	var slides strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&slides, `<div class="slide" id="slide-%d"><h1>Slide %d</h1></div>`, i, i+1)
	}
	page := fmt.Sprintf(`<!DOCTYPE html>
<html><head><style>
.slide { display: none; background: #234; color: white; }
.slide.active { display: block; }
</style></head>
<body>
<div id="loading-indicator">Loading...</div>
<div id="presentation-container"></div>
<div class="navigation"><button id="prev-btn">Prev</button><button id="next-btn">Next</button></div>
<script>
setTimeout(() => {
	document.getElementById('presentation-container').innerHTML = %q;
	document.getElementById('loading-indicator').style.display = 'none';
}, 200);
</script>
</body></html>`, slides.String())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	}))
	t.Cleanup(srv.Close)
	return srv.URL + "/"
}

type countingReporter struct {
	mu      sync.Mutex
	total   int
	updates []int
	done    bool
}

func (r *countingReporter) Start(total int) { r.mu.Lock(); r.total = total; r.mu.Unlock() }
func (r *countingReporter) Update(current int, _ string) {
	r.mu.Lock()
	r.updates = append(r.updates, current)
	r.mu.Unlock()
}
func (r *countingReporter) Finish() { r.mu.Lock(); r.done = true; r.mu.Unlock() }

func isPDF(data []byte) bool {
	return len(data) > 4 && string(data[:5]) == "%PDF-"
}

func TestExport_Strategies(t *testing.T) {
	e := newTestExporter(t)
	deck := serveDeck(t, 3)

	tests := []struct {
		strategy export.Strategy
		slides   string
		want     int
	}{
		{export.StrategyPrint, "", 3},
		{export.StrategyScreenshot, "", 3},
		{export.StrategyPrintEach, "", 3},
		{export.StrategyScreenshot, "2-3", 2},
		{export.StrategyPrintEach, "1", 1},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%s", tt.strategy, tt.slides), func(t *testing.T) {
			res, err := e.Export(context.Background(), deck, &export.Request{Strategy: tt.strategy, Slides: tt.slides})
			if err != nil {
				t.Fatalf("Export: %v", err)
			}
			if !isPDF(res.Bytes()) {
				t.Fatal("output is not a PDF")
			}
			if res.Pages() != tt.want {
				t.Errorf("pages = %d, want %d", res.Pages(), tt.want)
			}
			if res.Strategy() != tt.strategy {
				t.Errorf("strategy = %v", res.Strategy())
			}
		})
	}
}

func TestExport_ReportsProgress(t *testing.T) {
	e := newTestExporter(t)
	rep := &countingReporter{}
	_, err := e.Export(context.Background(), serveDeck(t, 2), &export.Request{
		Strategy: export.StrategyScreenshot,
		Progress: rep,
	})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if rep.total != 2 || len(rep.updates) != 2 || !rep.done {
		t.Errorf("progress = %+v", rep)
	}
}

func TestExport_RangeOutOfBounds(t *testing.T) {
	e := newTestExporter(t)
	_, err := e.Export(context.Background(), serveDeck(t, 2), &export.Request{Slides: "3"})
	if err == nil {
		t.Fatal("expected error for slide 3 of 2")
	}
}

func TestExport_DeckNeverReady(t *testing.T) {
	skipIfNoChrome(t)
	e, err := export.NewExporter(export.WithNoSandbox(), export.WithReadyTimeout(500*time.Millisecond))
	if err != nil {
		t.Fatalf("NewExporter: %v", err)
	}
	defer e.Close()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><div id="loading-indicator">Loading...</div></body></html>`)
	}))
	defer srv.Close()

	if _, err := e.Export(context.Background(), srv.URL, nil); err == nil {
		t.Fatal("expected readiness timeout")
	}
}

func TestExport_InvalidInput(t *testing.T) {
	e := newTestExporter(t)
	if _, err := e.Export(context.Background(), "not a url", nil); err == nil {
		t.Error("expected error for invalid URL")
	}
	_, err := e.Export(context.Background(), "http://127.0.0.1/", &export.Request{Strategy: "fax"})
	if !errors.Is(err, export.ErrUnknownStrategy) {
		t.Errorf("error = %v, want ErrUnknownStrategy", err)
	}
}

func TestExporter_Close(t *testing.T) {
	e := newTestExporter(t)
	if err := e.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := e.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	_, err := e.Export(context.Background(), "http://127.0.0.1/", nil)
	if !errors.Is(err, export.ErrClosed) {
		t.Errorf("Export after Close error = %v, want ErrClosed", err)
	}
}
