package scene

import "github.com/dhruvvakharia/portfolio/internal/motion"

// Element is a page node as the scenes see it. Style writes go through
// motion.Target so tweens can drive elements directly.
type Element interface {
	motion.Target
	motion.Box
	motion.Pinnable

	// Query returns the first descendant matching selector, or nil.
	Query(selector string) Element
	QueryAll(selector string) []Element

	Attr(name string) string
	SetAttr(name, value string)
	SetText(text string)
	SetClass(name string, on bool)
	HasClass(name string) bool

	// Value and SetValue read and write form controls.
	Value() string
	SetValue(v string)

	// On registers an event handler and returns a func that removes it.
	// Submit handlers run with the browser default suppressed.
	On(event string, handler func()) (remove func())
}

// Document is the page a set of scenes is mounted into.
type Document interface {
	motion.Viewport

	QueryAll(selector string) []Element
	Body() Element
	// Path is the current location path.
	Path() string

	OnScroll(handler func()) (remove func())
	OnResize(handler func()) (remove func())

	// Session values last for the browser tab.
	Session(key string) string
	SetSession(key, value string)
}

func targets(els []Element) []motion.Target {
	out := make([]motion.Target, len(els))
	for i, el := range els {
		out[i] = el
	}
	return out
}

// one wraps a possibly nil element as a target list.
func one(el Element) []motion.Target {
	if el == nil {
		return nil
	}
	return []motion.Target{el}
}
