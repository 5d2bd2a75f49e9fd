package export

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

var disableConfigDir sync.Once

// pdfcpuConfig returns an in-memory pdfcpu configuration. pdfcpu would
// otherwise create a config directory under the user's home.
func pdfcpuConfig() *model.Configuration {
	disableConfigDir.Do(api.DisableConfigDir)
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// mergePDFs concatenates documents in order.
func mergePDFs(parts [][]byte) ([]byte, error) {
	if len(parts) == 0 {
		return nil, ErrNoSlides
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	rs := make([]io.ReadSeeker, len(parts))
	for i, p := range parts {
		rs[i] = bytes.NewReader(p)
	}
	var out bytes.Buffer
	if err := api.MergeRaw(rs, &out, false, pdfcpuConfig()); err != nil {
		return nil, fmt.Errorf("export: merging %d documents: %w", len(parts), err)
	}
	return out.Bytes(), nil
}

// countPages reads the page count of a PDF.
func countPages(data []byte) (int, error) {
	n, err := api.PageCount(bytes.NewReader(data), pdfcpuConfig())
	if err != nil {
		return 0, fmt.Errorf("export: counting pages: %w", err)
	}
	return n, nil
}
