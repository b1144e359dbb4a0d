//go:build js && wasm

package browser

import (
	"syscall/js"
	"time"

	"github.com/dhruvvakharia/portfolio/internal/motion"
	"github.com/dhruvvakharia/portfolio/internal/scene"
)

// Document is the current window and its document.
type Document struct {
	window js.Value
	doc    js.Value
}

var _ scene.Document = Document{}

// Current returns the running page.
func Current() Document {
	w := js.Global()
	return Document{window: w, doc: w.Get("document")}
}

func (d Document) ScrollY() float64 { return d.window.Get("scrollY").Float() }
func (d Document) Height() float64  { return d.window.Get("innerHeight").Float() }

func (d Document) ScrollTo(y float64, smooth bool) {
	behavior := "auto"
	if smooth {
		behavior = "smooth"
	}
	d.window.Call("scrollTo", map[string]any{"top": y, "behavior": behavior})
}

func (d Document) QueryAll(selector string) []scene.Element {
	return wrapAll(d.doc.Call("querySelectorAll", selector))
}

func (d Document) Body() scene.Element { return wrap(d.doc.Get("body")) }
func (d Document) Path() string        { return d.window.Get("location").Get("pathname").String() }

func (d Document) OnScroll(h func()) func() { return listen(d.window, "scroll", h) }
func (d Document) OnResize(h func()) func() { return listen(d.window, "resize", h) }

// OnPageShow runs h when the page is restored from the back-forward cache.
func (d Document) OnPageShow(h func()) func() {
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 && args[0].Get("persisted").Truthy() {
			h()
		}
		return nil
	})
	d.window.Call("addEventListener", "pageshow", fn)
	return func() {
		d.window.Call("removeEventListener", "pageshow", fn)
		fn.Release()
	}
}

// OnPopState runs h with the new path on history navigation.
func (d Document) OnPopState(h func(path string)) func() {
	return listen(d.window, "popstate", func() { h(d.Path()) })
}

func (d Document) Session(key string) string {
	v := d.window.Get("sessionStorage").Call("getItem", key)
	if v.IsNull() {
		return ""
	}
	return v.String()
}

func (d Document) SetSession(key, value string) {
	d.window.Get("sessionStorage").Call("setItem", key, value)
}

// Clock schedules callbacks with setTimeout so they run on the event loop
// alongside DOM event handlers.
type Clock struct {
	window js.Value
}

var _ motion.Clock = Clock{}

// EventLoop returns a Clock on the current window.
func EventLoop() Clock { return Clock{window: js.Global()} }

func (Clock) Now() time.Time { return time.Now() }

func (c Clock) AfterFunc(d time.Duration, f func()) motion.Timer {
	t := &timeout{window: c.window}
	t.fn = js.FuncOf(func(js.Value, []js.Value) any {
		if t.done {
			return nil
		}
		t.done = true
		t.fn.Release()
		f()
		return nil
	})
	t.id = c.window.Call("setTimeout", t.fn, d.Milliseconds())
	return t
}

type timeout struct {
	window js.Value
	fn     js.Func
	id     js.Value
	done   bool
}

func (t *timeout) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	t.window.Call("clearTimeout", t.id)
	t.fn.Release()
	return true
}
