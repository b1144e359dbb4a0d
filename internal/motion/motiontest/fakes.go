package motiontest

import "github.com/dhruvvakharia/portfolio/internal/motion"

// Target records the last value set for each property.
type Target struct {
	Props map[string]any
	Sets  int
}

// NewTarget returns an empty Target.
func NewTarget() *Target { return &Target{Props: map[string]any{}} }

func (t *Target) Set(prop string, v any) {
	t.Props[prop] = v
	t.Sets++
}

func (t *Target) Clear(prop string) { delete(t.Props, prop) }

// Float returns a numeric property, or zero when unset.
func (t *Target) Float(prop string) float64 {
	v, _ := t.Props[prop].(float64)
	return v
}

// Targets adapts fakes to the motion.Target slice tweens take.
func Targets(ts ...*Target) []motion.Target {
	out := make([]motion.Target, len(ts))
	for i, t := range ts {
		out[i] = t
	}
	return out
}

// Viewport is a scroll window whose position tests set directly.
type Viewport struct {
	Y       float64
	H       float64
	Scrolls []float64
}

// NewViewport returns a viewport of height h scrolled to the top.
func NewViewport(h float64) *Viewport { return &Viewport{H: h} }

func (v *Viewport) ScrollY() float64 { return v.Y }
func (v *Viewport) Height() float64  { return v.H }

func (v *Viewport) ScrollTo(y float64, smooth bool) {
	v.Scrolls = append(v.Scrolls, y)
	v.Y = y
}

// Box is a fixed element box that can also be pinned.
type Box struct {
	R      motion.Rect
	Pinned float64
	Unpins int
}

func (b *Box) Rect() motion.Rect { return b.R }

func (b *Box) Pin(distance float64) { b.Pinned = distance }

func (b *Box) Unpin() {
	b.Pinned = 0
	b.Unpins++
}
