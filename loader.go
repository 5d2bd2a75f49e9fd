package slidedeck

import (
	"context"
	"log/slog"

	"github.com/yuin/goldmark"
	"golang.org/x/sync/errgroup"
)

// Deck is the result of loading a deck: its configuration and one fragment
// per descriptor, in descriptor order.
type Deck struct {
	Config    DeckConfig
	Fragments []Fragment
}

// Markup returns the fragment HTML in descriptor order, ready to be
// mounted into the presentation container.
func (d *Deck) Markup() []string {
	out := make([]string, len(d.Fragments))
	for i, f := range d.Fragments {
		out[i] = f.HTML
	}
	return out
}

// Failed returns the fragments that were replaced by error placeholders.
func (d *Deck) Failed() []Fragment {
	var out []Fragment
	for _, f := range d.Fragments {
		if f.Err != nil {
			out = append(out, f)
		}
	}
	return out
}

// LoaderOption configures a [Loader].
type LoaderOption func(*Loader)

// WithConfigPath sets the deck configuration location relative to the
// fetcher root. Defaults to [DefaultConfigPath].
func WithConfigPath(p string) LoaderOption {
	return func(l *Loader) {
		l.configPath = p
	}
}

// WithConcurrency bounds the number of fragments fetched at once.
// Zero, the default, fetches all fragments concurrently.
func WithConcurrency(n int) LoaderOption {
	return func(l *Loader) {
		l.concurrency = n
	}
}

// WithLoaderLogger sets the logger used to report degraded loads.
func WithLoaderLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

// WithMarkdown replaces the goldmark instance used for Markdown fragments.
func WithMarkdown(md goldmark.Markdown) LoaderOption {
	return func(l *Loader) {
		l.md = md
	}
}

// Loader fetches a deck configuration and its fragments. Loading never
// fails because of missing resources: a bad configuration degrades to
// [FallbackConfig] and a bad fragment to an [ErrorPlaceholder].
type Loader struct {
	fetcher     Fetcher
	configPath  string
	concurrency int
	logger      *slog.Logger
	md          goldmark.Markdown
}

// NewLoader returns a Loader reading resources through f.
func NewLoader(f Fetcher, opts ...LoaderOption) *Loader {
	l := &Loader{
		fetcher:    f,
		configPath: DefaultConfigPath,
		logger:     slog.Default(),
	}
	for _, o := range opts {
		o(l)
	}
	if l.md == nil {
		l.md = newMarkdown()
	}
	l.logger = l.logger.With("component", "loader")
	return l
}

// LoadConfig fetches and parses the deck configuration, returning
// [FallbackConfig] if either step fails.
func (l *Loader) LoadConfig(ctx context.Context) DeckConfig {
	data, err := l.fetcher.Fetch(ctx, l.configPath)
	if err != nil {
		l.logger.Warn("loading slide configuration failed, using fallback", "path", l.configPath, "err", err)
		return FallbackConfig()
	}
	cfg, err := ParseDeckConfig(l.configPath, data)
	if err != nil {
		l.logger.Warn("parsing slide configuration failed, using fallback", "path", l.configPath, "err", err)
		return FallbackConfig()
	}
	return cfg
}

// LoadFragments fetches every descriptor's fragment concurrently. The
// result has one entry per descriptor at the descriptor's index, whatever
// order the fetches complete in.
func (l *Loader) LoadFragments(ctx context.Context, descs []Descriptor) []Fragment {
	out := make([]Fragment, len(descs))

	var g errgroup.Group
	if l.concurrency > 0 {
		g.SetLimit(l.concurrency)
	}
	for i, d := range descs {
		g.Go(func() error {
			out[i] = l.loadFragment(ctx, d)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func (l *Loader) loadFragment(ctx context.Context, d Descriptor) Fragment {
	src, err := l.fetcher.Fetch(ctx, d.File)
	if err == nil {
		var markup string
		markup, err = renderFragment(l.md, d, src)
		if err == nil {
			return Fragment{Descriptor: d, HTML: markup}
		}
	}
	l.logger.Error("loading slide failed", "id", d.ID, "file", d.File, "err", err)
	return Fragment{Descriptor: d, HTML: ErrorPlaceholder(d), Err: err}
}

// Load fetches the configuration and all fragments. The only error
// returned is ctx's, when it is done before loading completes.
func (l *Loader) Load(ctx context.Context) (*Deck, error) {
	cfg := l.LoadConfig(ctx)
	frags := l.LoadFragments(ctx, cfg.Slides)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &Deck{Config: cfg, Fragments: frags}, nil
}
