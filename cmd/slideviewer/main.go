//go:build js && wasm

// Command slideviewer is the in-browser slide viewer, compiled to
// WebAssembly:
//
//	GOOS=js GOARCH=wasm go build -o viewer.wasm ./cmd/slideviewer
//
// The page loading it must provide #presentation-container; the viewer
// page built into `slidedeck serve` does.
package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/porticus-lab/slidedeck"
	"github.com/porticus-lab/slidedeck/internal/dom"
)

func main() {
	logger := slog.New(slog.NewTextHandler(dom.Console{}, nil))

	view, err := dom.NewView()
	if err != nil {
		logger.Error("cannot start viewer", "error", err)
		return
	}
	fetcher, err := slidedeck.NewHTTPFetcher(dom.BaseURL(), nil)
	if err != nil {
		logger.Error("cannot start viewer", "error", err)
		return
	}

	loaderOpts := []slidedeck.LoaderOption{slidedeck.WithLoaderLogger(logger)}
	if p := dom.ConfigPath(); p != "" {
		loaderOpts = append(loaderOpts, slidedeck.WithConfigPath(p))
	}
	timer := slidedeck.NewPresentationTimer(logger, time.Minute)
	defer timer.Stop()

	ctrl := slidedeck.NewController(view, dom.Location{}, slidedeck.NewLoader(fetcher, loaderOpts...),
		slidedeck.WithLogger(logger),
		slidedeck.WithObserver(timer),
		slidedeck.WithObserver(slidedeck.NewInstructions(dom.Console{}, dom.SessionFlags{})),
	)

	ctx := context.Background()
	if err := ctrl.LoadAll(ctx); err != nil {
		logger.Error("loading deck", "error", err)
		return
	}
	if err := ctrl.InitializeNavigation(); err != nil {
		logger.Error("starting navigation", "error", err)
		return
	}

	events := make(chan slidedeck.Event, 64)
	release := dom.Listen(events)
	defer release()
	stopReload := dom.WatchReload()
	defer stopReload()

	ctrl.Run(ctx, events)
}
