package export

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, h/2, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestFit(t *testing.T) {
	tests := []struct {
		w, h, boxW, boxH float64
		wantW, wantH     float64
	}{
		{2112, 1632, 792, 612, 792, 612},
		{1600, 900, 792, 612, 792, 445.5},
		{100, 400, 792, 612, 153, 612},
		{0, 0, 10, 20, 10, 20},
	}
	for _, tt := range tests {
		w, h := fit(tt.w, tt.h, tt.boxW, tt.boxH)
		if !almostEqual(w, tt.wantW, 0.01) || !almostEqual(h, tt.wantH, 0.01) {
			t.Errorf("fit(%v,%v in %vx%v) = %v x %v, want %v x %v", tt.w, tt.h, tt.boxW, tt.boxH, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestAssembleImages_OnePagePerSlide(t *testing.T) {
	images := [][]byte{testPNG(t, 64, 48), testPNG(t, 160, 90), testPNG(t, 48, 64)}
	data, err := assembleImages(images, DefaultPageConfig())
	if err != nil {
		t.Fatalf("assembleImages: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatal("output is not a PDF")
	}
	n, err := countPages(data)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("pages = %d, want 3", n)
	}
}

func TestAssembleImages_Errors(t *testing.T) {
	if _, err := assembleImages(nil, DefaultPageConfig()); !errors.Is(err, ErrNoSlides) {
		t.Errorf("no images: error = %v, want ErrNoSlides", err)
	}
	if _, err := assembleImages([][]byte{[]byte("not a png")}, DefaultPageConfig()); err == nil {
		t.Error("garbage image: expected error")
	}
	huge := DefaultPageConfig()
	huge.Margin = UniformMargin(20)
	if _, err := assembleImages([][]byte{testPNG(t, 4, 4)}, huge); err == nil {
		t.Error("oversized margins: expected error")
	}
}

func TestMergePDFs(t *testing.T) {
	one, err := assembleImages([][]byte{testPNG(t, 32, 24)}, DefaultPageConfig())
	if err != nil {
		t.Fatal(err)
	}
	two, err := assembleImages([][]byte{testPNG(t, 32, 24), testPNG(t, 24, 32)}, DefaultPageConfig())
	if err != nil {
		t.Fatal(err)
	}

	merged, err := mergePDFs([][]byte{one, two})
	if err != nil {
		t.Fatalf("mergePDFs: %v", err)
	}
	n, err := countPages(merged)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("merged pages = %d, want 3", n)
	}

	if _, err := mergePDFs(nil); !errors.Is(err, ErrNoSlides) {
		t.Errorf("empty merge error = %v, want ErrNoSlides", err)
	}
	if _, err := countPages([]byte("%PDF-1.4 broken")); err == nil {
		t.Error("countPages on garbage: expected error")
	}
}
