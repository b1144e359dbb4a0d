package motion

import (
	"fmt"
	"math"
	"time"
)

// Direction of a panel change.
type Direction int

const (
	Forward Direction = iota + 1
	Backward
)

// String returns the slide direction used by the panel CSS classes.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "down"
	case Backward:
		return "up"
	}
	return "none"
}

// Services panel timing.
const (
	PanelDistance   = 350.0
	PanelCooldown   = 450 * time.Millisecond
	maxStepProgress = 0.9999
)

// StepIndex buckets progress into one of n panels: floor(clamp(p, 0,
// 0.9999)*n), clamped to [0, n-1].
func StepIndex(progress float64, n int) int {
	if n <= 0 {
		return 0
	}
	p := math.Max(0, math.Min(progress, maxStepProgress))
	i := int(math.Floor(p * float64(n)))
	if i < 0 {
		i = 0
	}
	if i > n-1 {
		i = n - 1
	}
	return i
}

// StepperConfig configures a Stepper.
type StepperConfig struct {
	Panels   int
	Cooldown time.Duration
	Clock    Clock
	// OnChange runs after every committed index change.
	OnChange func(index int, dir Direction)
	// ScrollTo moves the viewport when a panel is selected manually.
	ScrollTo func(y float64)
}

// Stepper maps scroll progress across a pinned range onto a discrete panel
// index. After each committed change it ignores further changes until the
// cooldown elapses; ignored updates are dropped, not queued.
type Stepper struct {
	cfg   StepperConfig
	index int
	dir   Direction
	busy  bool
	done  bool
	timer Timer

	start, end float64
}

// NewStepper returns a stepper showing panel 0.
func NewStepper(cfg StepperConfig) (*Stepper, error) {
	if cfg.Panels <= 0 {
		return nil, fmt.Errorf("stepper: need at least one panel, got %d", cfg.Panels)
	}
	if cfg.Clock == nil {
		return nil, fmt.Errorf("stepper: no clock")
	}
	return &Stepper{cfg: cfg, dir: Forward}, nil
}

// Distance is the scroll length a stepper with n panels reserves.
func Distance(n int) float64 { return float64(n) * PanelDistance }

// Index is the committed panel.
func (s *Stepper) Index() int { return s.index }

// Direction of the last committed change.
func (s *Stepper) Direction() Direction { return s.dir }

// Busy reports whether a transition cooldown is running.
func (s *Stepper) Busy() bool { return s.busy }

// SetRange records the scroll offsets of the pinned range so Select can scroll
// to a panel.
func (s *Stepper) SetRange(start, end float64) {
	s.start, s.end = start, end
}

// Update feeds scroll progress. It reports whether a new index was committed.
func (s *Stepper) Update(progress float64) bool {
	if s.busy || s.done {
		return false
	}
	next := StepIndex(progress, s.cfg.Panels)
	if next == s.index {
		return false
	}
	s.commit(next)
	return true
}

// Select jumps straight to panel i and scrolls to the middle of its range. It
// does nothing for the current panel, an out-of-range index or during a
// cooldown.
func (s *Stepper) Select(i int) bool {
	if i < 0 || i >= s.cfg.Panels || i == s.index || s.busy || s.done {
		return false
	}
	s.commit(i)
	if s.cfg.ScrollTo != nil && s.end > s.start {
		s.cfg.ScrollTo(s.OffsetFor(i))
	}
	return true
}

// OffsetFor is the scroll offset of the middle of panel i's range.
func (s *Stepper) OffsetFor(i int) float64 {
	p := (float64(i) + 0.5) / float64(s.cfg.Panels)
	return s.start + (s.end-s.start)*p
}

func (s *Stepper) commit(next int) {
	if next > s.index {
		s.dir = Forward
	} else {
		s.dir = Backward
	}
	s.index = next
	s.busy = true
	s.timer = s.cfg.Clock.AfterFunc(s.cfg.Cooldown, func() { s.busy = false })
	if s.cfg.OnChange != nil {
		s.cfg.OnChange(next, s.dir)
	}
}

// Revert cancels a pending cooldown and stops the stepper for good.
func (s *Stepper) Revert() {
	s.done = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.busy = false
}
