// Package slidedeck loads HTML slide decks and drives their navigation.
//
// A deck is a directory holding a configuration that lists slides in
// order, one markup fragment per slide, and static assets:
//
//	config/slides.json
//	slides/slide-00-title.html
//	slides/slide-01-agenda.md
//
// The configuration is JSON (or YAML, by extension):
//
//	{"slides": [
//	    {"id": "slide-0", "file": "slides/slide-00-title.html"},
//	    {"id": "slide-1", "file": "slides/slide-01-agenda.md"}
//	]}
//
// # Loading
//
// A [Loader] fetches the configuration and every fragment through a
// [Fetcher] ([HTTPFetcher] or [FSFetcher]). Loading degrades rather than
// fails: an unreadable configuration falls back to [FallbackConfig] and an
// unreadable fragment is replaced by an [ErrorPlaceholder] carrying the
// same id, so the slide count always matches the configuration.
//
// # Navigation
//
// A [Controller] owns the presentation state and drives a [View] and a
// [Location]:
//
//	c := slidedeck.NewController(view, loc, slidedeck.NewLoader(fetcher))
//	if err := c.LoadAll(ctx); err != nil {
//	    return err
//	}
//	if err := c.InitializeNavigation(); err != nil {
//	    return err
//	}
//	return c.Run(ctx, events)
//
// [Controller.ShowSlide] is the single mutation point: it activates one
// slide, updates counters and controls, and mirrors the position to the
// URL fragment as "#slide-N" (zero-based). Out-of-range requests are
// ignored. Input arrives as [Event] values (keys, clicks, swipes, hash
// changes, print hooks) on the channel passed to [Controller.Run].
package slidedeck
