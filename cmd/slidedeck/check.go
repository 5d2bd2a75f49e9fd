package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/porticus-lab/slidedeck"
)

var errSlidesFailed = errors.New("some slides failed to load")

func newCheckCmd(a *app) *cobra.Command {
	var root string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Load a deck from disk and report every slide",
		Long: `Loads the deck the way the viewer does and prints one line per slide
fragment. Exits non-zero when any fragment failed to load.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("root") {
				a.cfg.Deck.Root = root
			}
			return a.check(cmd)
		},
	}
	cmd.Flags().StringVarP(&root, "root", "r", "", "deck directory")
	return cmd
}

func (a *app) check(cmd *cobra.Command) error {
	dc := a.cfg.Deck
	loader := slidedeck.NewLoader(
		slidedeck.FSFetcher{FS: os.DirFS(dc.Root)},
		slidedeck.WithConfigPath(dc.ConfigPath),
		slidedeck.WithConcurrency(dc.Concurrency),
		slidedeck.WithLoaderLogger(a.logger),
	)
	deck, err := loader.Load(cmd.Context())
	if err != nil {
		return err
	}
	slides, err := slidedeck.ParseSlides(strings.Join(deck.Markup(), "\n"))
	if err != nil {
		return fmt.Errorf("parsing slides: %w", err)
	}

	out := cmd.OutOrStdout()
	if deck.Config.Title != "" {
		fmt.Fprintln(out, deck.Config.Title)
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tID\tFILE\tSTATUS")
	for i, frag := range deck.Fragments {
		status := "ok"
		if frag.Err != nil {
			status = "FAILED: " + frag.Err.Error()
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i, frag.Descriptor.ID, frag.Descriptor.File, status)
	}
	tw.Flush()

	failed := len(deck.Failed())
	fmt.Fprintf(out, "%d slides, %d failed\n", len(slides), failed)
	if failed > 0 {
		return errSlidesFailed
	}
	return nil
}
