package scene

import (
	"strings"

	"github.com/dhruvvakharia/portfolio/internal/motion"
	"github.com/dhruvvakharia/portfolio/internal/motion/motiontest"
)

// node is an in-memory Element. Selectors are limited to a single tag,
// .class, [attr] or [attr="value"].
type node struct {
	*motiontest.Target
	motiontest.Box

	tag      string
	classes  map[string]bool
	attrs    map[string]string
	text     string
	value    string
	children []*node
	handlers map[string][]*func()
}

func el(tag string, classes string, children ...*node) *node {
	n := &node{
		Target:   motiontest.NewTarget(),
		tag:      tag,
		classes:  map[string]bool{},
		attrs:    map[string]string{},
		handlers: map[string][]*func(){},
		children: children,
	}
	for _, c := range strings.Fields(classes) {
		n.classes[c] = true
	}
	return n
}

func (n *node) with(attr, value string) *node {
	n.attrs[attr] = value
	return n
}

func (n *node) at(top, height float64) *node {
	n.R = motion.Rect{Top: top, Height: height}
	return n
}

func (n *node) matches(sel string) bool {
	switch {
	case strings.HasPrefix(sel, "."):
		return n.classes[sel[1:]]
	case strings.HasPrefix(sel, "[") && strings.HasSuffix(sel, "]"):
		body := sel[1 : len(sel)-1]
		name, want, hasValue := strings.Cut(body, "=")
		got, ok := n.attrs[name]
		if !hasValue {
			return ok
		}
		return ok && got == strings.Trim(want, `"`)
	}
	return n.tag == sel
}

func (n *node) walk(sel string, out *[]*node) {
	for _, c := range n.children {
		if c.matches(sel) {
			*out = append(*out, c)
		}
		c.walk(sel, out)
	}
}

func (n *node) find(sel string) []*node {
	var out []*node
	n.walk(sel, &out)
	return out
}

func (n *node) Query(sel string) Element {
	if found := n.find(sel); len(found) > 0 {
		return found[0]
	}
	return nil
}

func (n *node) QueryAll(sel string) []Element {
	found := n.find(sel)
	out := make([]Element, len(found))
	for i, f := range found {
		out[i] = f
	}
	return out
}

func (n *node) Attr(name string) string       { return n.attrs[name] }
func (n *node) SetAttr(name, value string)    { n.attrs[name] = value }
func (n *node) SetText(text string)           { n.text = text }
func (n *node) SetClass(name string, on bool) { n.classes[name] = on }
func (n *node) HasClass(name string) bool     { return n.classes[name] }
func (n *node) Value() string                 { return n.value }
func (n *node) SetValue(v string)             { n.value = v }

func (n *node) child(sel string) *node  { return n.find(sel)[0] }
func (n *node) all(sel string) []*node  { return n.find(sel) }
func (n *node) opacity() float64        { return n.Float("opacity") }
func (n *node) listeners(ev string) int { return len(n.handlers[ev]) }
func (n *node) click()                  { n.fire("click") }

func (n *node) color() motion.RGBA {
	c, _ := n.Props["color"].(motion.RGBA)
	return c
}

// typeValue changes a control's value the way a keystroke would.
func (n *node) typeValue(v string) {
	n.value = v
	n.fire("input")
}

func (n *node) On(event string, handler func()) func() {
	h := &handler
	n.handlers[event] = append(n.handlers[event], h)
	return func() {
		hs := n.handlers[event]
		for i, x := range hs {
			if x == h {
				n.handlers[event] = append(hs[:i], hs[i+1:]...)
				break
			}
		}
		if len(n.handlers[event]) == 0 {
			delete(n.handlers, event)
		}
	}
}

func (n *node) fire(event string) {
	for _, h := range append([]*func(){}, n.handlers[event]...) {
		(*h)()
	}
}

// page is an in-memory Document.
type page struct {
	motiontest.Viewport
	root    *node
	body    *node
	path    string
	session map[string]string
	scroll  []*func()
	resize  []*func()
}

func newPage(path string, sections ...*node) *page {
	body := el("body", "", sections...)
	return &page{
		Viewport: motiontest.Viewport{H: 1000},
		root:     el("html", "", body),
		body:     body,
		path:     path,
		session:  map[string]string{},
	}
}

func (p *page) QueryAll(sel string) []Element { return p.root.QueryAll(sel) }
func (p *page) Body() Element                 { return p.body }
func (p *page) Path() string                  { return p.path }
func (p *page) Session(key string) string     { return p.session[key] }
func (p *page) SetSession(key, value string)  { p.session[key] = value }

func (p *page) OnScroll(h func()) func() { return subscribe(&p.scroll, h) }
func (p *page) OnResize(h func()) func() { return subscribe(&p.resize, h) }

// scrollTo moves the viewport and dispatches a scroll event.
func (p *page) scrollTo(y float64) {
	p.Y = y
	for _, h := range append([]*func(){}, p.scroll...) {
		(*h)()
	}
}

func subscribe(list *[]*func(), h func()) func() {
	ptr := &h
	*list = append(*list, ptr)
	return func() {
		for i, x := range *list {
			if x == ptr {
				*list = append((*list)[:i], (*list)[i+1:]...)
				return
			}
		}
	}
}
