// Package watch reports changes below a deck directory in debounced
// batches.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period that ends a batch.
const DefaultDebounce = 150 * time.Millisecond

// Watcher watches a directory tree. New subdirectories are watched as
// they appear.
type Watcher struct {
	root     string
	debounce time.Duration
	logger   *slog.Logger
	ignore   func(name string) bool

	fsw *fsnotify.Watcher
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period that ends a batch.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) { w.logger = l }
}

// WithIgnore skips paths for which fn returns true. Hidden files and
// editor swap files are always skipped.
func WithIgnore(fn func(name string) bool) Option {
	return func(w *Watcher) { w.ignore = fn }
}

// New starts watching root and its subdirectories.
func New(root string, opts ...Option) (*Watcher, error) {
	w := &Watcher{root: root, debounce: DefaultDebounce, logger: slog.Default()}
	for _, o := range opts {
		o(w)
	}
	w.logger = w.logger.With("component", "watch")

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: creating watcher: %w", err)
	}
	w.fsw = fsw
	if err := w.addTree(root); err != nil {
		fsw.Close()
		return nil, err
	}
	return w, nil
}

// addTree adds dir and every directory below it.
func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return fmt.Errorf("watch: %w", err)
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && w.skip(path) {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("watch: adding %s: %w", path, err)
		}
		return nil
	})
}

func (w *Watcher) skip(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp") || strings.HasSuffix(base, ".swx") {
		return true
	}
	return w.ignore != nil && w.ignore(path)
}

// Run delivers batches of changed paths, relative to the root and sorted,
// to fn until ctx is done or the watcher fails. fn runs on Run's
// goroutine.
func (w *Watcher) Run(ctx context.Context, fn func(changed []string)) error {
	defer w.fsw.Close()

	pending := make(map[string]struct{})
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if w.skip(ev.Name) {
				continue
			}
			if ev.Has(fsnotify.Create) {
				// A new directory brings its own subtree.
				if err := w.addTree(ev.Name); err != nil {
					w.logger.Debug("cannot watch new path", "path", ev.Name, "error", err)
				}
			}
			if ev.Op == fsnotify.Chmod {
				continue
			}
			rel, err := filepath.Rel(w.root, ev.Name)
			if err != nil {
				rel = ev.Name
			}
			pending[filepath.ToSlash(rel)] = struct{}{}
			timer.Reset(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "error", err)

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			changed := make([]string, 0, len(pending))
			for p := range pending {
				changed = append(changed, p)
			}
			sort.Strings(changed)
			clear(pending)
			w.logger.Debug("deck changed", "paths", changed)
			fn(changed)
		}
	}
}

// Close stops the watcher without running it.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
