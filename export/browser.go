package export

import (
	"fmt"

	"github.com/go-rod/rod/lib/launcher"
)

// resolveBrowser returns a cached Chromium executable, downloading one
// into rod's cache directory on first use.
func resolveBrowser() (string, error) {
	path, err := launcher.NewBrowser().Get()
	if err != nil {
		return "", fmt.Errorf("export: downloading browser: %w", err)
	}
	return path, nil
}
