package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/porticus-lab/slidedeck/export"
	"github.com/porticus-lab/slidedeck/internal/progress"
	"github.com/porticus-lab/slidedeck/internal/server"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		output       string
		strategy     string
		slides       string
		root         string
		viewerDir    string
		chromePath   string
		noSandbox    bool
		autoDownload bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a deck to PDF",
		Long: `Serves the deck on a free local port, opens it in headless Chrome and
writes a PDF. Strategies:

  print        print the whole deck once, one slide per page
  screenshot   capture each slide as an image, pixel exact
  print-each   print each slide separately and merge the pages`,
		Example: `  slidedeck export -o talk.pdf
  slidedeck export --strategy screenshot --slides 1-5,9`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			e := &a.cfg.Export
			if flags.Changed("output") {
				e.Output = output
			}
			if flags.Changed("strategy") {
				e.Strategy = strategy
			}
			if flags.Changed("slides") {
				e.Slides = slides
			}
			if flags.Changed("chrome-path") {
				e.ChromePath = chromePath
			}
			if flags.Changed("no-sandbox") {
				e.NoSandbox = noSandbox
			}
			if flags.Changed("auto-download") {
				e.AutoDownload = autoDownload
			}
			if flags.Changed("root") {
				a.cfg.Deck.Root = root
			}
			if flags.Changed("viewer-dir") {
				a.cfg.Server.ViewerDir = viewerDir
			}
			if err := a.cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.export(ctx, cmd)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&output, "output", "o", "", "PDF file to write (default from config, presentation.pdf)")
	f.StringVarP(&strategy, "strategy", "s", "", "print, screenshot or print-each")
	f.StringVar(&slides, "slides", "", `slides to export, 1-based ("1-3,5"); all when empty`)
	f.StringVarP(&root, "root", "r", "", "deck directory")
	f.StringVar(&viewerDir, "viewer-dir", "", "directory holding viewer.wasm and wasm_exec.js")
	f.StringVar(&chromePath, "chrome-path", "", "Chrome or Chromium executable")
	f.BoolVar(&noSandbox, "no-sandbox", false, "disable the Chrome sandbox (needed as root)")
	f.BoolVar(&autoDownload, "auto-download", false, "download Chromium when none is configured")
	return cmd
}

func (a *app) export(ctx context.Context, cmd *cobra.Command) error {
	srv := server.New(server.Config{
		Host:       "127.0.0.1",
		Root:       a.cfg.Deck.Root,
		ViewerDir:  a.cfg.Server.ViewerDir,
		ConfigPath: a.cfg.Deck.ConfigPath,
	}, server.WithLogger(a.logger))
	if err := srv.CheckViewer(); err != nil {
		return err
	}
	deckURL, err := srv.Listen()
	if err != nil {
		return err
	}
	defer srv.Shutdown(context.Background())

	opts := append(a.cfg.Export.ExporterOptions(), export.WithLogger(a.logger))
	exp, err := export.NewExporter(opts...)
	if err != nil {
		return err
	}
	defer exp.Close()

	req := a.cfg.Export.Request()
	req.Progress = progress.NewReporter(cmd.ErrOrStderr())
	res, err := exp.Export(ctx, deckURL, req)
	if err != nil {
		return err
	}
	if err := res.WriteToFile(a.cfg.Export.Output, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", a.cfg.Export.Output, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d pages, %d bytes, %s)\n",
		a.cfg.Export.Output, res.Pages(), res.Len(), res.Strategy())
	return nil
}
