package export

import (
	"bytes"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"
)

var samplePDF = []byte("%PDF-1.4 fake slides")

func newResult() *Result {
	return &Result{data: samplePDF, pages: 3, strategy: StrategyPrintEach}
}

func TestResult_Accessors(t *testing.T) {
	r := newResult()
	if !bytes.Equal(r.Bytes(), samplePDF) {
		t.Error("Bytes() did not return original data")
	}
	if r.Len() != len(samplePDF) {
		t.Errorf("Len() = %d, want %d", r.Len(), len(samplePDF))
	}
	if r.Pages() != 3 {
		t.Errorf("Pages() = %d, want 3", r.Pages())
	}
	if r.Strategy() != StrategyPrintEach {
		t.Errorf("Strategy() = %v", r.Strategy())
	}
	if got, want := r.Base64(), base64.StdEncoding.EncodeToString(samplePDF); got != want {
		t.Errorf("Base64() = %q, want %q", got, want)
	}
}

func TestResult_ReaderAndWriteTo(t *testing.T) {
	r := newResult()
	if r.Reader().Len() != r.Reader().Len() {
		t.Error("Reader() calls disagree")
	}

	var buf bytes.Buffer
	n, err := r.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if n != int64(len(samplePDF)) || !bytes.Equal(buf.Bytes(), samplePDF) {
		t.Errorf("WriteTo wrote %d bytes %q", n, buf.Bytes())
	}
}

func TestResult_WriteToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.pdf")
	if err := newResult().WriteToFile(path, 0o644); err != nil {
		t.Fatalf("WriteToFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}
	if !bytes.Equal(data, samplePDF) {
		t.Error("WriteToFile produced different content")
	}
}
