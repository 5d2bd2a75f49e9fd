package export

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Request describes one export.
type Request struct {
	// Strategy defaults to StrategyPrint.
	Strategy Strategy

	// Page describes the paper. Nil uses [DefaultPageConfig].
	Page *PageConfig

	// Slides selects slides with 1-based ranges such as "1-3,5".
	// Empty exports every slide.
	Slides string

	// Progress receives per-slide updates. Nil discards them.
	Progress Reporter
}

// Exporter renders a served deck to PDF with a headless browser.
//
// The browser is started once and reused. An Exporter is safe for
// concurrent use; each export runs in its own tab. Call [Exporter.Close]
// to stop the browser.
type Exporter struct {
	cfg           exporterConfig
	logger        *slog.Logger
	allocCtx      context.Context
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc

	mu     sync.Mutex
	closed bool
}

// NewExporter starts a headless browser configured by opts.
func NewExporter(opts ...Option) (*Exporter, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "export")

	if cfg.chromePath == "" && cfg.autoDownload {
		path, err := resolveBrowser()
		if err != nil {
			return nil, err
		}
		logger.Debug("using downloaded browser", "path", path)
		cfg.chromePath = path
	}

	allocOpts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("disable-translate", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("hide-scrollbars", true),
		chromedp.Flag("headless", cfg.headless),
	)
	if cfg.chromePath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(cfg.chromePath))
	}
	if cfg.noSandbox {
		allocOpts = append(allocOpts, chromedp.Flag("no-sandbox", true))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), allocOpts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// Start the browser eagerly so errors surface at creation time.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("export: starting browser: %w", err)
	}

	return &Exporter{
		cfg:           cfg,
		logger:        logger,
		allocCtx:      allocCtx,
		allocCancel:   allocCancel,
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
	}, nil
}

// Close stops the browser. Close is idempotent.
func (e *Exporter) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}
	e.closed = true
	e.browserCancel()
	e.allocCancel()
	return nil
}

// Export loads the deck served at deckURL and renders the requested
// slides. A nil req exports every slide with StrategyPrint.
func (e *Exporter) Export(ctx context.Context, deckURL string, req *Request) (*Result, error) {
	if err := e.checkClosed(); err != nil {
		return nil, err
	}
	if _, err := url.ParseRequestURI(deckURL); err != nil {
		return nil, fmt.Errorf("export: invalid URL %q: %w", deckURL, err)
	}

	r := Request{}
	if req != nil {
		r = *req
	}
	strategy, err := ParseStrategy(string(r.Strategy))
	if err != nil {
		return nil, err
	}
	pg := r.Page.resolved()
	progress := r.Progress
	if progress == nil {
		progress = nopReporter{}
	}

	if e.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.timeout)
		defer cancel()
	}

	tabCtx, tabCancel := chromedp.NewContext(e.browserCtx)
	defer tabCancel()
	stop := context.AfterFunc(ctx, tabCancel)
	defer stop()

	log := e.logger.With("url", deckURL, "strategy", strategy)
	start := time.Now()

	total, err := e.open(tabCtx, deckURL)
	if err != nil {
		return nil, e.failed(ctx, err)
	}
	indices, err := ParseSlideRange(r.Slides, total)
	if err != nil {
		return nil, err
	}
	if len(indices) == 0 {
		return nil, ErrNoSlides
	}
	log.Debug("deck ready", "slides", total, "selected", len(indices))

	var data []byte
	switch strategy {
	case StrategyPrint:
		data, err = e.printAll(tabCtx, indices, pg)
	case StrategyScreenshot:
		data, err = e.screenshots(tabCtx, indices, pg, progress)
	case StrategyPrintEach:
		data, err = e.printEach(tabCtx, indices, pg, progress)
	}
	if err != nil {
		return nil, e.failed(ctx, err)
	}

	pages, err := countPages(data)
	if err != nil {
		return nil, err
	}
	log.Info("exported deck", "pages", pages, "bytes", len(data), "took", time.Since(start).Round(time.Millisecond))
	return &Result{data: data, pages: pages, strategy: strategy}, nil
}

// open navigates to the deck, waits for its slides and prepares the page
// for capture. It returns the number of slides.
func (e *Exporter) open(ctx context.Context, deckURL string) (int, error) {
	var ready bool
	var total int
	if err := chromedp.Run(ctx,
		chromedp.EmulateViewport(e.cfg.viewportWidth, e.cfg.viewportHeight, chromedp.EmulateScale(e.cfg.scaleFactor)),
		chromedp.Navigate(deckURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Poll(readyExpr, &ready, chromedp.WithPollingTimeout(e.cfg.readyTimeout)),
		chromedp.Sleep(e.cfg.settleDelay),
		chromedp.Evaluate(countExpr, &total),
		chromedp.Evaluate(prepareScript(), nil),
	); err != nil {
		return 0, fmt.Errorf("export: loading deck: %w", err)
	}
	if total == 0 {
		return 0, ErrNoSlides
	}
	return total, nil
}

func (e *Exporter) printAll(ctx context.Context, indices []int, pg PageConfig) ([]byte, error) {
	var buf []byte
	if err := chromedp.Run(ctx,
		chromedp.Evaluate(showScript(indices), nil),
		e.print(pg, "", &buf),
	); err != nil {
		return nil, fmt.Errorf("export: printing: %w", err)
	}
	return buf, nil
}

func (e *Exporter) screenshots(ctx context.Context, indices []int, pg PageConfig, progress Reporter) ([]byte, error) {
	progress.Start(len(indices))
	defer progress.Finish()

	images := make([][]byte, 0, len(indices))
	for i, idx := range indices {
		var img []byte
		if err := chromedp.Run(ctx,
			chromedp.Evaluate(showScript([]int{idx}), nil),
			chromedp.Sleep(e.cfg.slideSettle),
			chromedp.CaptureScreenshot(&img),
		); err != nil {
			return nil, fmt.Errorf("export: capturing slide %d: %w", idx+1, err)
		}
		images = append(images, img)
		progress.Update(i+1, fmt.Sprintf("slide %d", idx+1))
	}
	return assembleImages(images, pg)
}

func (e *Exporter) printEach(ctx context.Context, indices []int, pg PageConfig, progress Reporter) ([]byte, error) {
	progress.Start(len(indices))
	defer progress.Finish()

	parts := make([][]byte, 0, len(indices))
	for i, idx := range indices {
		var buf []byte
		if err := chromedp.Run(ctx,
			chromedp.Evaluate(showScript([]int{idx}), nil),
			chromedp.Sleep(e.cfg.slideSettle),
			e.print(pg, "1", &buf),
		); err != nil {
			return nil, fmt.Errorf("export: printing slide %d: %w", idx+1, err)
		}
		parts = append(parts, buf)
		progress.Update(i+1, fmt.Sprintf("slide %d", idx+1))
	}
	return mergePDFs(parts)
}

// print prints the current page into out. ranges limits the printed
// pages when non-empty.
func (e *Exporter) print(pg PageConfig, ranges string, out *[]byte) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		width, height := pg.paperDimensions()
		marginTop, marginRight, marginBottom, marginLeft := pg.marginInches()

		params := page.PrintToPDF().
			WithPaperWidth(width).
			WithPaperHeight(height).
			WithMarginTop(marginTop).
			WithMarginRight(marginRight).
			WithMarginBottom(marginBottom).
			WithMarginLeft(marginLeft).
			WithScale(pg.Scale).
			WithPrintBackground(pg.PrintBackground).
			WithPreferCSSPageSize(pg.PreferCSSPageSize)
		if ranges != "" {
			params = params.WithPageRanges(ranges)
		}

		var err error
		*out, _, err = params.Do(ctx)
		return err
	})
}

// failed prefers the caller's context error over the browser's report of
// the same cancellation.
func (e *Exporter) failed(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("export: %w", ctxErr)
	}
	return err
}

func (e *Exporter) checkClosed() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}
	return nil
}

// Export renders the deck at deckURL with a temporary [Exporter].
// For repeated exports create an Exporter with [NewExporter] to reuse the
// browser.
func Export(ctx context.Context, deckURL string, req *Request, opts ...Option) (*Result, error) {
	exp, err := NewExporter(opts...)
	if err != nil {
		return nil, err
	}
	defer exp.Close()
	return exp.Export(ctx, deckURL, req)
}
