package server

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed assets
var assets embed.FS

// viewerFS holds the built-in viewer page and stylesheet.
var viewerFS, _ = fs.Sub(assets, "assets")

// ErrNoViewer is returned by CheckViewer when a browser opening the deck
// would get a page it cannot run.
var ErrNoViewer = errors.New("server: no viewer available")

// indexPage is the built-in viewer page. It carries the deck
// configuration path in body[data-config].
var indexPage = template.Must(template.ParseFS(viewerFS, "index.html"))

func serveIndex(w http.ResponseWriter, configPath string) {
	var buf bytes.Buffer
	if err := indexPage.Execute(&buf, struct{ ConfigPath string }{configPath}); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentType("index.html"))
	w.Write(buf.Bytes())
}

// CheckViewer reports whether the deck can be viewed: either the deck
// ships its own index.html, or the built-in page can load viewer.wasm
// from ViewerDir.
func (s *Server) CheckViewer() error {
	if isFile(filepath.Join(s.cfg.Root, "index.html")) {
		return nil
	}
	if s.cfg.ViewerDir != "" && isFile(filepath.Join(s.cfg.ViewerDir, "viewer.wasm")) {
		return nil
	}
	return fmt.Errorf("%w: %s has no index.html and no viewer.wasm was found; build cmd/slideviewer and pass --viewer-dir",
		ErrNoViewer, s.cfg.Root)
}

func isFile(name string) bool {
	info, err := os.Stat(name)
	return err == nil && !info.IsDir()
}

// serveEmbedded writes a built-in viewer file.
func serveEmbedded(w http.ResponseWriter, r *http.Request, name string) {
	data, err := fs.ReadFile(viewerFS, name)
	if err != nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	if ct := contentType(name); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.Write(data)
}

// viewerHandler serves /_viewer/<name> from dir when present there, else
// from the built-in assets. dir supplies the compiled viewer.wasm and
// Go's wasm_exec.js.
func viewerHandler(dir, configPath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/_viewer/")
		if name == "" || escapes(name) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		name = path.Clean(name)
		if dir != "" {
			full := filepath.Join(dir, filepath.FromSlash(name))
			if isFile(full) {
				if ct := contentType(name); ct != "" {
					w.Header().Set("Content-Type", ct)
				}
				http.ServeFile(w, r, full)
				return
			}
		}
		if name == "index.html" {
			serveIndex(w, configPath)
			return
		}
		serveEmbedded(w, r, name)
	}
}
