package slidedeck

import (
	"bytes"
	"fmt"
	"html"
	"path"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Class names forming the markup contract between fragments, the viewer
// stylesheet and the exporter.
const (
	SlideClass        = "slide"
	ActiveClass       = "active"
	ErrorClass        = "error"
	PrintVisibleClass = "print-visible"
)

// Slide is one slide element as found in the presentation container.
type Slide struct {
	ID     string
	Failed bool
}

// Fragment is the markup for one descriptor. Err is set when the fragment
// could not be fetched or rendered; HTML then holds the error placeholder.
type Fragment struct {
	Descriptor Descriptor
	HTML       string
	Err        error
}

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
	)
}

func isMarkdown(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// renderFragment turns fetched source into slide markup. Markdown is
// rendered to HTML; output without a slide element is wrapped in one so
// every descriptor contributes exactly one slide.
func renderFragment(md goldmark.Markdown, d Descriptor, src []byte) (string, error) {
	if isMarkdown(d.File) {
		var buf bytes.Buffer
		if err := md.Convert(src, &buf); err != nil {
			return "", fmt.Errorf("slidedeck: rendering %s: %w", d.File, err)
		}
		return wrapSlide(d.ID, buf.String()), nil
	}

	markup := string(src)
	slides, err := ParseSlides(markup)
	if err != nil {
		return "", err
	}
	if len(slides) == 0 {
		return wrapSlide(d.ID, markup), nil
	}
	return markup, nil
}

func wrapSlide(id, inner string) string {
	return fmt.Sprintf("<div class=\"%s\" id=\"%s\">\n<div class=\"slide-content\">\n%s</div>\n</div>",
		SlideClass, html.EscapeString(id), inner)
}

// ErrorPlaceholder returns the markup substituted for a slide whose
// fragment failed to load. It keeps the descriptor's id so slide count and
// order are preserved.
func ErrorPlaceholder(d Descriptor) string {
	return fmt.Sprintf(`<div class="%s %s" id="%s">
    <div class="slide-content center-content">
        <p>Error loading slide: %s</p>
    </div>
</div>`, SlideClass, ErrorClass, html.EscapeString(d.ID), html.EscapeString(d.File))
}

// ParseSlides returns the slide elements of an HTML fragment in document
// order. An element is a slide when its class list contains "slide".
// Slides nested inside another slide are not reported.
func ParseSlides(markup string) ([]Slide, error) {
	ctx := &xhtml.Node{Type: xhtml.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := xhtml.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return nil, fmt.Errorf("slidedeck: parsing fragment: %w", err)
	}

	var slides []Slide
	var walk func(n *xhtml.Node)
	walk = func(n *xhtml.Node) {
		if n.Type == xhtml.ElementNode && hasClass(n, SlideClass) {
			slides = append(slides, Slide{
				ID:     getAttr(n, "id"),
				Failed: hasClass(n, ErrorClass),
			})
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return slides, nil
}

func getAttr(n *xhtml.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *xhtml.Node, class string) bool {
	for _, c := range strings.Fields(getAttr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}
