package slidedeck

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"path"
	"strings"
)

// Fetcher retrieves deck resources by their deck-relative name.
type Fetcher interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// HTTPFetcher fetches deck resources over HTTP relative to BaseURL.
// It works in the browser too, where net/http is backed by the Fetch API.
type HTTPFetcher struct {
	BaseURL *url.URL
	Client  *http.Client
}

// NewHTTPFetcher returns an HTTPFetcher rooted at rawBase.
// If client is nil, [http.DefaultClient] is used.
func NewHTTPFetcher(rawBase string, client *http.Client) (*HTTPFetcher, error) {
	base, err := url.Parse(rawBase)
	if err != nil {
		return nil, fmt.Errorf("slidedeck: invalid base URL %q: %w", rawBase, err)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPFetcher{BaseURL: base, Client: client}, nil
}

// Fetch implements [Fetcher].
func (f *HTTPFetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	ref, err := url.Parse(name)
	if err != nil {
		return nil, fmt.Errorf("slidedeck: invalid resource name %q: %w", name, err)
	}
	target := f.BaseURL.ResolveReference(ref).String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("slidedeck: building request: %w", err)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("slidedeck: fetching %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: target, StatusCode: resp.StatusCode, Status: resp.Status}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("slidedeck: reading %s: %w", target, err)
	}
	return data, nil
}

// FSFetcher reads deck resources from a file system, typically
// os.DirFS(deckRoot).
type FSFetcher struct {
	FS fs.FS
}

// Fetch implements [Fetcher]. Names are cleaned; names that climb above
// the root are rejected with [ErrPathEscape].
func (f FSFetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c := path.Clean(name)
	if c == ".." || strings.HasPrefix(c, "../") {
		return nil, fmt.Errorf("%w: %q", ErrPathEscape, name)
	}
	clean := strings.TrimPrefix(c, "/")
	if !fs.ValidPath(clean) || clean == "." {
		return nil, fmt.Errorf("slidedeck: invalid resource name %q", name)
	}
	data, err := fs.ReadFile(f.FS, clean)
	if err != nil {
		return nil, fmt.Errorf("slidedeck: reading %s: %w", clean, err)
	}
	return data, nil
}
