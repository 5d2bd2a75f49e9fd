package server

import (
	"errors"
	"io/fs"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// contentTypes is consulted before the mime package so deck assets get
// the same types on every platform.
var contentTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".js":   "application/javascript",
	".json": "application/json",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".svg":  "image/svg+xml",
	".wasm": "application/wasm",
	".md":   "text/markdown; charset=utf-8",
}

// contentType picks a type from the extension table, then the mime
// package. It returns "" when the content must be sniffed.
func contentType(name string) string {
	ext := strings.ToLower(path.Ext(name))
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	return mime.TypeByExtension(ext)
}

// escapes reports whether any segment of p is "..".
func escapes(p string) bool {
	for _, seg := range strings.FieldsFunc(p, func(r rune) bool { return r == '/' || r == '\\' }) {
		if seg == ".." {
			return true
		}
	}
	return false
}

// staticHandler serves files below root. "/" serves index.html, falling
// back to the built-in viewer page when the deck has none.
type staticHandler struct {
	root       string
	configPath string
	logger     *slog.Logger
}

func (h *staticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Path
	if escapes(name) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	if name == "/" || name == "" {
		name = "/index.html"
	}
	full := filepath.Join(h.root, filepath.FromSlash(path.Clean(name)))

	f, err := os.Open(full)
	if err != nil {
		if name == "/index.html" && errors.Is(err, fs.ErrNotExist) {
			serveIndex(w, h.configPath)
			return
		}
		h.notFound(w, name, err)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		h.notFound(w, name, err)
		return
	}
	if ct := contentType(name); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	// ServeContent sniffs when no type was set.
	http.ServeContent(w, r, name, info.ModTime(), f)
}

func (h *staticHandler) notFound(w http.ResponseWriter, name string, err error) {
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		h.logger.Warn("cannot serve file", "path", name, "error", err)
	}
	http.Error(w, "Not Found", http.StatusNotFound)
}
