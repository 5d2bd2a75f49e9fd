//go:build js && wasm

package dom

import (
	"strings"
	"syscall/js"
)

// Location implements slidedeck.Location on window.location.
type Location struct{}

func (Location) Hash() string {
	return js.Global().Get("location").Get("hash").String()
}

func (Location) SetHash(fragment string) {
	js.Global().Get("location").Set("hash", fragment)
}

// BaseURL returns the directory URL of the current page, which deck paths
// are resolved against.
func BaseURL() string {
	href := js.Global().Get("location").Get("href")
	return js.Global().Get("URL").New(".", href).Get("href").String()
}

// ConfigPath returns the body's data-config attribute, or "".
func ConfigPath() string {
	v := js.Global().Get("document").Get("body").Get("dataset").Get("config")
	if v.IsUndefined() || v.IsNull() {
		return ""
	}
	return strings.TrimSpace(v.String())
}

// SessionFlags implements slidedeck.FlagStore on sessionStorage.
type SessionFlags struct{}

func (SessionFlags) Flag(key string) bool {
	v := js.Global().Get("sessionStorage").Call("getItem", key)
	return !v.IsNull() && v.String() == "true"
}

func (SessionFlags) SetFlag(key string) {
	js.Global().Get("sessionStorage").Call("setItem", key, "true")
}

// Console writes to the browser console, one call per write.
type Console struct{}

func (Console) Write(p []byte) (int, error) {
	js.Global().Get("console").Call("log", strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
