//go:build js && wasm

// Package browser adapts the DOM to the scene interfaces through syscall/js.
package browser

import (
	"fmt"
	"strconv"
	"strings"
	"syscall/js"

	"github.com/dhruvvakharia/portfolio/internal/motion"
	"github.com/dhruvvakharia/portfolio/internal/scene"
)

// Element wraps a DOM element.
type Element struct {
	v js.Value
	// transform parts are kept separately and composed on every write.
	transform map[string]float64
	pinned    bool
}

var _ scene.Element = (*Element)(nil)

func wrap(v js.Value) scene.Element {
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	return &Element{v: v, transform: map[string]float64{}}
}

func wrapAll(list js.Value) []scene.Element {
	n := list.Length()
	out := make([]scene.Element, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, wrap(list.Index(i)))
	}
	return out
}

var transformProps = map[string]bool{"x": true, "y": true, "xPercent": true, "yPercent": true, "scale": true}

func (e *Element) Set(prop string, value any) {
	style := e.v.Get("style")
	switch {
	case transformProps[prop]:
		f, _ := value.(float64)
		e.transform[prop] = f
		style.Set("transform", e.composeTransform())
	case prop == "opacity":
		style.Set("opacity", fmt.Sprint(value))
	default:
		style.Call("setProperty", kebab(prop), fmt.Sprint(value))
	}
}

func (e *Element) Clear(prop string) {
	style := e.v.Get("style")
	if transformProps[prop] {
		delete(e.transform, prop)
		style.Set("transform", e.composeTransform())
		return
	}
	style.Call("removeProperty", kebab(prop))
}

func (e *Element) composeTransform() string {
	var b strings.Builder
	num := func(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
	if x, y := e.transform["x"], e.transform["y"]; x != 0 || y != 0 {
		fmt.Fprintf(&b, "translate(%spx, %spx) ", num(x), num(y))
	}
	if xp, yp := e.transform["xPercent"], e.transform["yPercent"]; xp != 0 || yp != 0 {
		fmt.Fprintf(&b, "translate(%s%%, %s%%) ", num(xp), num(yp))
	}
	if s, ok := e.transform["scale"]; ok && s != 1 {
		fmt.Fprintf(&b, "scale(%s)", num(s))
	}
	return strings.TrimSpace(b.String())
}

// Rect reports the document offset. A pinned element is measured through its
// parent, which keeps its place in the flow while the element sticks.
func (e *Element) Rect() motion.Rect {
	target := e.v
	if e.pinned {
		target = e.v.Get("parentElement")
	}
	r := target.Call("getBoundingClientRect")
	return motion.Rect{
		Top:    r.Get("top").Float() + js.Global().Get("scrollY").Float(),
		Height: r.Get("height").Float(),
	}
}

// Pin makes the element sticky and pads its parent by distance so the page
// scrolls that far while the element holds still.
func (e *Element) Pin(distance float64) {
	e.pinned = true
	style := e.v.Get("style")
	style.Set("position", "sticky")
	style.Set("top", "0")
	e.v.Get("parentElement").Get("style").Set("paddingBottom", strconv.FormatFloat(distance, 'f', -1, 64)+"px")
}

func (e *Element) Unpin() {
	e.pinned = false
	style := e.v.Get("style")
	style.Call("removeProperty", "position")
	style.Call("removeProperty", "top")
	e.v.Get("parentElement").Get("style").Call("removeProperty", "padding-bottom")
}

func (e *Element) Query(selector string) scene.Element {
	return wrap(e.v.Call("querySelector", selector))
}

func (e *Element) QueryAll(selector string) []scene.Element {
	return wrapAll(e.v.Call("querySelectorAll", selector))
}

func (e *Element) Attr(name string) string {
	v := e.v.Call("getAttribute", name)
	if v.IsNull() {
		return ""
	}
	return v.String()
}

func (e *Element) SetAttr(name, value string) { e.v.Call("setAttribute", name, value) }
func (e *Element) SetText(text string)        { e.v.Set("textContent", text) }
func (e *Element) HasClass(name string) bool  { return e.v.Get("classList").Call("contains", name).Bool() }
func (e *Element) Value() string              { return e.v.Get("value").String() }
func (e *Element) SetValue(v string)          { e.v.Set("value", v) }

func (e *Element) SetClass(name string, on bool) {
	e.v.Get("classList").Call("toggle", name, on)
}

func (e *Element) On(event string, handler func()) func() {
	return listen(e.v, event, handler)
}

// listen attaches handler to target. Submit events never reach the browser's
// default action.
func listen(target js.Value, event string, handler func()) func() {
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		if event == "submit" && len(args) > 0 {
			args[0].Call("preventDefault")
		}
		handler()
		return nil
	})
	opts := map[string]any{"passive": event == "scroll"}
	target.Call("addEventListener", event, fn, opts)
	return func() {
		target.Call("removeEventListener", event, fn)
		fn.Release()
	}
}

// kebab turns backgroundColor into background-color.
func kebab(prop string) string {
	var b strings.Builder
	for _, r := range prop {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
