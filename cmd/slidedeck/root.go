package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/porticus-lab/slidedeck/internal/config"
)

// app carries state shared by the subcommands.
type app struct {
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "slidedeck",
		Short: "Serve, check and export HTML slide decks",
		Long: `slidedeck presents decks built from HTML and Markdown slide fragments
listed in config/slides.json. It serves a deck with live reload, checks
that every fragment loads, and exports decks to PDF with headless Chrome.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", config.DefaultFile, "config file path")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		newServeCmd(a),
		newExportCmd(a),
		newCheckCmd(a),
		newInitCmd(a),
		newVersionCmd(),
	)
	return root
}

// load reads the configuration and sets up logging on stderr.
func (a *app) load(stderr io.Writer) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.cfg = cfg
	return nil
}
