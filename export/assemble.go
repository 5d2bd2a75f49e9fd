package export

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"

	"github.com/jung-kurt/gofpdf"
)

// assembleImages places one PNG per page, scaled to fit inside the
// margins and centered.
func assembleImages(pngs [][]byte, pg PageConfig) ([]byte, error) {
	if len(pngs) == 0 {
		return nil, ErrNoSlides
	}
	pageW, pageH := pg.pointDimensions()
	m := pg.resolved().Margin

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: pageW, Ht: pageH},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	boxX, boxY := cmToPoints(m.Left), cmToPoints(m.Top)
	boxW := pageW - boxX - cmToPoints(m.Right)
	boxH := pageH - boxY - cmToPoints(m.Bottom)
	if boxW <= 0 || boxH <= 0 {
		return nil, fmt.Errorf("export: margins leave no room on a %.0fx%.0fpt page", pageW, pageH)
	}

	for i, data := range pngs {
		cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("export: decoding slide image %d: %w", i+1, err)
		}
		name := fmt.Sprintf("slide-%d", i+1)
		opt := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.AddPage()
		pdf.RegisterImageOptionsReader(name, opt, bytes.NewReader(data))

		w, h := fit(float64(cfg.Width), float64(cfg.Height), boxW, boxH)
		pdf.ImageOptions(name, boxX+(boxW-w)/2, boxY+(boxH-h)/2, w, h, false, opt, 0, "")
		if err := pdf.Error(); err != nil {
			return nil, fmt.Errorf("export: placing slide image %d: %w", i+1, err)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("export: writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// fit scales w x h to the largest size inside boxW x boxH with the same
// aspect ratio.
func fit(w, h, boxW, boxH float64) (float64, float64) {
	if w <= 0 || h <= 0 {
		return boxW, boxH
	}
	s := boxW / w
	if hs := boxH / h; hs < s {
		s = hs
	}
	return w * s, h * s
}
