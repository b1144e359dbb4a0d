package motion

// Viewport is the scrolling window.
type Viewport interface {
	ScrollY() float64
	Height() float64
	ScrollTo(y float64, smooth bool)
}

// Scroller owns the live scroll triggers of a page and feeds them scroll
// positions. The page adapter calls Update on every scroll event and Refresh
// after layout changes.
type Scroller struct {
	view     Viewport
	ticker   *Ticker
	triggers []*Trigger
	last     float64
}

// NewScroller returns a scroller reading positions from view.
func NewScroller(view Viewport, ticker *Ticker) *Scroller {
	return &Scroller{view: view, ticker: ticker, last: view.ScrollY()}
}

// Viewport returns the scrolling window.
func (s *Scroller) Viewport() Viewport { return s.view }

// Create registers a trigger, resolves its range against the current layout
// and syncs it with the current scroll position, which may fire OnEnter
// straight away when the page is already scrolled past the start.
func (s *Scroller) Create(vars TriggerVars) (*Trigger, error) {
	t, err := newTrigger(s, vars)
	if err != nil {
		return nil, err
	}
	s.triggers = append(s.triggers, t)
	t.refresh(s.view.Height())
	y := s.view.ScrollY()
	t.update(y, y)
	return t, nil
}

// Triggers returns the live triggers in creation order.
func (s *Scroller) Triggers() []*Trigger {
	return append([]*Trigger(nil), s.triggers...)
}

// Update dispatches the current scroll position to every live trigger.
func (s *Scroller) Update() {
	y := s.view.ScrollY()
	prev := s.last
	s.last = y
	for _, t := range s.Triggers() {
		t.update(y, prev)
	}
}

// Refresh recomputes every trigger range in creation order, so pin spacing
// added by earlier triggers is reflected in later ones, then syncs positions.
func (s *Scroller) Refresh() {
	h := s.view.Height()
	for _, t := range s.Triggers() {
		if !t.killed {
			t.refresh(h)
		}
	}
	s.Update()
}

// ScrollTo moves the viewport smoothly to y.
func (s *Scroller) ScrollTo(y float64) {
	s.view.ScrollTo(y, true)
}

// KillAll removes every live trigger.
func (s *Scroller) KillAll() {
	for _, t := range s.Triggers() {
		t.Kill()
	}
}

func (s *Scroller) remove(t *Trigger) {
	for i, x := range s.triggers {
		if x == t {
			s.triggers = append(s.triggers[:i], s.triggers[i+1:]...)
			return
		}
	}
}
