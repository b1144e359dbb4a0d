package motion

import "time"

// FrameInterval is the tick spacing of the frame loop.
const FrameInterval = time.Second / 60

type advancer interface {
	// advance moves the animation forward by dt and reports whether it wants
	// further frames.
	advance(dt time.Duration) bool
}

// Ticker runs the frame loop shared by every playing animation. It only keeps
// a timer scheduled while something is active, so an idle page costs nothing.
type Ticker struct {
	clock  Clock
	active []advancer
	timer  Timer
	last   time.Time
}

// NewTicker returns an idle ticker on clock.
func NewTicker(clock Clock) *Ticker {
	return &Ticker{clock: clock}
}

// Active reports how many animations are currently receiving frames.
func (t *Ticker) Active() int { return len(t.active) }

func (t *Ticker) add(a advancer) {
	if t.has(a) {
		return
	}
	t.active = append(t.active, a)
	if t.timer == nil {
		t.last = t.clock.Now()
		t.timer = t.clock.AfterFunc(FrameInterval, t.tick)
	}
}

func (t *Ticker) remove(a advancer) {
	for i, x := range t.active {
		if x == a {
			t.active = append(t.active[:i], t.active[i+1:]...)
			break
		}
	}
	if len(t.active) == 0 && t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

func (t *Ticker) has(a advancer) bool {
	for _, x := range t.active {
		if x == a {
			return true
		}
	}
	return false
}

func (t *Ticker) tick() {
	now := t.clock.Now()
	dt := now.Sub(t.last)
	t.last = now
	t.timer = nil

	snapshot := append([]advancer(nil), t.active...)
	for _, a := range snapshot {
		if !t.has(a) {
			continue
		}
		if !a.advance(dt) {
			t.remove(a)
		}
	}
	if len(t.active) > 0 && t.timer == nil {
		t.timer = t.clock.AfterFunc(FrameInterval, t.tick)
	}
}
