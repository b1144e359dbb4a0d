// Package scene mounts the animation choreography of each page section. The
// server marks section roots with a data-scene attribute; Mount finds them and
// runs the matching Scene inside its own motion scope.
package scene

import (
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/dhruvvakharia/portfolio/internal/motion"
)

// Attr names the attribute that selects a scene for an element.
const Attr = "data-scene"

// Context is handed to a Scene. Everything created through the embedded Scope
// is torn down when the section unmounts or the page path changes.
type Context struct {
	*motion.Scope
	Root Element
	Doc  Document
}

// Scene wires one section.
type Scene func(c *Context) error

var registry = map[string]Scene{}

// Register adds a scene under name. It panics on duplicates.
func Register(name string, s Scene) {
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("scene %q registered twice", name))
	}
	registry[name] = s
}

// Names lists the registered scenes.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Page holds the mounted scenes of one document.
type Page struct {
	doc      Document
	engine   *motion.Engine
	bindings []*motion.Binding
	names    []string
	unlisten []func()
}

// Mount discovers every scene root in doc and mounts it. Unknown scene names
// are logged and skipped.
func Mount(doc Document, clock motion.Clock) *Page {
	p := &Page{doc: doc, engine: motion.NewEngine(clock, doc)}
	path := doc.Path()
	for _, root := range doc.QueryAll("[" + Attr + "]") {
		name := root.Attr(Attr)
		s, ok := registry[name]
		if !ok {
			log.Printf("scene: unknown scene %q", name)
			continue
		}
		p.bindings = append(p.bindings, motion.Bind(p.engine, p.setup(name, s, root), path))
		p.names = append(p.names, name)
	}
	p.unlisten = append(p.unlisten,
		doc.OnScroll(p.engine.Scroller.Update),
		doc.OnResize(p.engine.Scroller.Refresh),
	)
	return p
}

func (p *Page) setup(name string, s Scene, root Element) motion.Setup {
	return func(scope *motion.Scope) func() {
		if err := s(&Context{Scope: scope, Root: root, Doc: p.doc}); err != nil {
			log.Printf("scene %s: %v", name, err)
		}
		return nil
	}
}

// Engine returns the page's animation engine.
func (p *Page) Engine() *motion.Engine { return p.engine }

// Mounted lists the mounted scene names in document order.
func (p *Page) Mounted() []string { return append([]string(nil), p.names...) }

// Navigate remounts every scene if path differs from the last one seen.
func (p *Page) Navigate(path string) {
	for _, b := range p.bindings {
		b.Update(path)
	}
	p.engine.Scroller.Refresh()
}

// Unmount reverts every scene, kills any trigger created on the engine
// outside a scene and stops listening to the document.
func (p *Page) Unmount() {
	for i := len(p.bindings) - 1; i >= 0; i-- {
		p.bindings[i].Close()
	}
	p.bindings = nil
	p.engine.Scroller.KillAll()
	for _, f := range p.unlisten {
		f()
	}
	p.unlisten = nil
}

// all returns the targets under the scene root matching selector.
func (c *Context) all(selector string) []motion.Target {
	return targets(c.Root.QueryAll(selector))
}

// entrance is a one-shot from/to reveal started by a scroll trigger on the
// scene root.
type entrance struct {
	selector string
	from, to motion.Props
	duration time.Duration
	delay    time.Duration
	stagger  time.Duration
	ease     motion.Ease
	start    string
	actions  string
}

// rise is the common fade-and-lift entrance.
func rise(selector string, y float64, d time.Duration, start string) entrance {
	return entrance{
		selector: selector,
		from:     motion.Props{"opacity": 0, "y": y},
		to:       motion.Props{"opacity": 1, "y": 0},
		duration: d,
		start:    start,
	}
}

// enter creates the entrance. Sections without matching elements are left
// alone.
func (c *Context) enter(e entrance) error {
	ts := c.all(e.selector)
	if len(ts) == 0 {
		return nil
	}
	_, err := c.FromTo(ts, motion.TweenVars{
		From:     e.from,
		To:       e.to,
		Duration: e.duration,
		Delay:    e.delay,
		Stagger:  e.stagger,
		Ease:     e.ease,
		ScrollTrigger: &motion.TriggerVars{
			Trigger:       c.Root,
			Start:         e.start,
			ToggleActions: e.actions,
		},
	})
	if err != nil {
		return fmt.Errorf("%s entrance: %w", e.selector, err)
	}
	return nil
}

// play runs an entrance straight away instead of on scroll.
func (c *Context) play(e entrance) error {
	ts := c.all(e.selector)
	if len(ts) == 0 {
		return nil
	}
	_, err := c.FromTo(ts, motion.TweenVars{
		From:     e.from,
		To:       e.to,
		Duration: e.duration,
		Delay:    e.delay,
		Stagger:  e.stagger,
		Ease:     e.ease,
	})
	if err != nil {
		return fmt.Errorf("%s entrance: %w", e.selector, err)
	}
	return nil
}

// listen registers handler for event on el for the lifetime of the scope.
func (c *Context) listen(el Element, event string, handler func()) {
	if el == nil {
		return
	}
	c.Cleanup(el.On(event, handler))
}

func seconds(s float64) time.Duration { return motion.Seconds(s) }
