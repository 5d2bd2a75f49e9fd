//go:build js && wasm

package dom

import (
	"strings"
	"syscall/js"

	"github.com/porticus-lab/slidedeck"
)

type binding struct {
	target js.Value
	event  string
	fn     js.Func
}

// Listen forwards browser input to events until the returned function is
// called. Callbacks run on the JavaScript event loop, so events must be
// drained by a goroutine that never waits on JavaScript.
func Listen(events chan<- slidedeck.Event) (release func()) {
	win := js.Global()
	doc := win.Get("document")
	var bindings []binding

	on := func(target js.Value, event string, handle func(e js.Value)) {
		if !present(target) {
			return
		}
		fn := js.FuncOf(func(this js.Value, args []js.Value) any {
			handle(args[0])
			return nil
		})
		target.Call("addEventListener", event, fn)
		bindings = append(bindings, binding{target: target, event: event, fn: fn})
	}

	on(doc, "keydown", func(e js.Value) {
		key := e.Get("key").String()
		if slidedeck.IsNavigationKey(key) {
			e.Call("preventDefault")
		}
		events <- slidedeck.KeyEvent{Key: key}
	})
	on(byID(doc, PrevButtonID), "click", func(js.Value) {
		events <- slidedeck.ClickEvent{Control: slidedeck.ControlPrev}
	})
	on(byID(doc, NextButtonID), "click", func(js.Value) {
		events <- slidedeck.ClickEvent{Control: slidedeck.ControlNext}
	})
	on(doc, "touchstart", func(e js.Value) {
		events <- slidedeck.TouchStart{X: touchX(e)}
	})
	on(doc, "touchend", func(e js.Value) {
		events <- slidedeck.TouchEnd{X: touchX(e)}
	})
	on(win, "hashchange", func(js.Value) {
		events <- slidedeck.HashChange{Hash: Location{}.Hash()}
	})
	on(win, "beforeprint", func(js.Value) {
		events <- slidedeck.BeforePrint{}
	})
	on(win, "afterprint", func(js.Value) {
		events <- slidedeck.AfterPrint{}
	})

	return func() {
		for _, b := range bindings {
			b.target.Call("removeEventListener", b.event, b.fn)
			b.fn.Release()
		}
	}
}

func touchX(e js.Value) float64 {
	touches := e.Get("changedTouches")
	if !present(touches) || touches.Length() == 0 {
		return 0
	}
	return touches.Index(0).Get("screenX").Float()
}

// WatchReload reloads the page when the server's reload socket says so.
// Servers without live reload refuse the socket and nothing happens.
func WatchReload() (stop func()) {
	loc := js.Global().Get("location")
	scheme := "ws:"
	if loc.Get("protocol").String() == "https:" {
		scheme = "wss:"
	}
	url := scheme + "//" + loc.Get("host").String() + "/_reload"

	ws := js.Global().Get("WebSocket").New(url)
	onMessage := js.FuncOf(func(this js.Value, args []js.Value) any {
		if strings.TrimSpace(args[0].Get("data").String()) == "reload" {
			loc.Call("reload")
		}
		return nil
	})
	ws.Set("onmessage", onMessage)
	return func() {
		ws.Call("close")
		onMessage.Release()
	}
}
