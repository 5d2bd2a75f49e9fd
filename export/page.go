package export

// PageSize represents paper dimensions in centimeters.
type PageSize struct {
	Width  float64 // Width in centimeters.
	Height float64 // Height in centimeters.
}

// Standard paper sizes.
var (
	A4      = PageSize{Width: 21.0, Height: 29.7}
	Letter  = PageSize{Width: 21.59, Height: 27.94}
	Legal   = PageSize{Width: 21.59, Height: 35.56}
	Tabloid = PageSize{Width: 27.94, Height: 43.18}
)

// PageSizeByName looks up a paper size by its lower-case name
// ("a4", "letter", "legal", "tabloid").
func PageSizeByName(name string) (PageSize, bool) {
	switch name {
	case "a4":
		return A4, true
	case "letter":
		return Letter, true
	case "legal":
		return Legal, true
	case "tabloid":
		return Tabloid, true
	}
	return PageSize{}, false
}

// Orientation represents the page orientation.
type Orientation int

const (
	// Landscape is the default for slides.
	Landscape Orientation = iota
	Portrait
)

// Margin represents page margins in centimeters.
type Margin struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// UniformMargin returns a Margin with the same value on all sides.
func UniformMargin(cm float64) Margin {
	return Margin{Top: cm, Right: cm, Bottom: cm, Left: cm}
}

// PageConfig controls the paper of the exported PDF.
//
// A nil PageConfig or zero-value fields use the slide defaults: US Letter,
// landscape, no margins, scale 1.0, backgrounds printed and CSS @page
// sizes honored.
type PageConfig struct {
	// Size specifies the paper size. Defaults to Letter.
	Size PageSize

	// Orientation defaults to Landscape.
	Orientation Orientation

	// Margin in centimeters. The zero value means no margins.
	Margin Margin

	// Scale of the webpage rendering when printing. Must be between 0.1
	// and 2.0. Defaults to 1.0.
	Scale float64

	// PrintBackground enables printing of background colors and images.
	PrintBackground bool

	// PreferCSSPageSize gives precedence to any CSS @page size declared
	// in the deck over the Size field.
	PreferCSSPageSize bool
}

// DefaultPageConfig returns the page setup used for slide exports.
func DefaultPageConfig() PageConfig {
	return PageConfig{
		Size:              Letter,
		Orientation:       Landscape,
		Scale:             1.0,
		PrintBackground:   true,
		PreferCSSPageSize: true,
	}
}

// resolved returns a PageConfig with unset fields replaced by defaults.
func (p *PageConfig) resolved() PageConfig {
	d := DefaultPageConfig()
	if p == nil {
		return d
	}
	r := *p
	if r.Size == (PageSize{}) {
		r.Size = d.Size
	}
	if r.Scale <= 0 {
		r.Scale = d.Scale
	}
	return r
}

func cmToInches(cm float64) float64 {
	return cm / 2.54
}

func cmToPoints(cm float64) float64 {
	return cm / 2.54 * 72
}

// paperDimensions returns the paper width and height in inches,
// accounting for orientation.
func (p *PageConfig) paperDimensions() (width, height float64) {
	r := p.resolved()
	w := cmToInches(r.Size.Width)
	h := cmToInches(r.Size.Height)
	if r.Orientation == Landscape {
		return h, w
	}
	return w, h
}

// pointDimensions is paperDimensions in PDF points.
func (p *PageConfig) pointDimensions() (width, height float64) {
	w, h := p.paperDimensions()
	return w * 72, h * 72
}

// marginInches returns margins converted to inches.
func (p *PageConfig) marginInches() (top, right, bottom, left float64) {
	r := p.resolved()
	return cmToInches(r.Margin.Top),
		cmToInches(r.Margin.Right),
		cmToInches(r.Margin.Bottom),
		cmToInches(r.Margin.Left)
}
