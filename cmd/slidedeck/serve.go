package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/porticus-lab/slidedeck/internal/server"
	"github.com/porticus-lab/slidedeck/internal/watch"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		port      int
		root      string
		watchDeck bool
		viewerDir string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a deck over HTTP",
		Long: `Serves the deck directory. With --watch, browsers viewing the deck
reload whenever a file below the deck changes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("port") {
				a.cfg.Server.Port = port
			}
			if flags.Changed("root") {
				a.cfg.Deck.Root = root
			}
			if flags.Changed("watch") {
				a.cfg.Server.Watch = watchDeck
			}
			if flags.Changed("viewer-dir") {
				a.cfg.Server.ViewerDir = viewerDir
			}
			if err := a.cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "port to listen on (default from config, 8000)")
	cmd.Flags().StringVarP(&root, "root", "r", "", "deck directory (default from config, .)")
	cmd.Flags().BoolVarP(&watchDeck, "watch", "w", false, "reload browsers when the deck changes")
	cmd.Flags().StringVar(&viewerDir, "viewer-dir", "", "directory holding viewer.wasm and wasm_exec.js")
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	sc := a.cfg.Server
	srv := server.New(server.Config{
		Host:       sc.Host,
		Port:       sc.Port,
		Root:       a.cfg.Deck.Root,
		ViewerDir:  sc.ViewerDir,
		ConfigPath: a.cfg.Deck.ConfigPath,
		Reload:     sc.Watch,
		AllowAll:   sc.AllowAll,
	}, server.WithLogger(a.logger))
	if err := srv.CheckViewer(); err != nil {
		a.logger.Warn("deck will not render in a browser", "error", err)
	}

	if sc.Watch {
		w, err := watch.New(a.cfg.Deck.Root, watch.WithLogger(a.logger))
		if err != nil {
			return err
		}
		go w.Run(ctx, func(changed []string) {
			n := srv.Hub().Broadcast(server.ReloadMessage)
			a.logger.Info("deck changed, reloading viewers", "files", len(changed), "viewers", n)
		})
	}
	return srv.Start(ctx)
}
