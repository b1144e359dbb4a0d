package motion

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Box reports an element's current layout.
type Box interface {
	Rect() Rect
}

// Pinnable is an element that can hold itself in the viewport for a scroll
// distance. Pin reserves distance pixels of extra scroll; Unpin releases it.
type Pinnable interface {
	Pin(distance float64)
	Unpin()
}

// TriggerVars configures a scroll observer.
type TriggerVars struct {
	Trigger Box
	// Start defaults to "top bottom", End to "bottom top".
	Start string
	End   string
	Pin   Pinnable

	// ToggleActions lists the actions run on Animation for enter, leave,
	// enter-back and leave-back, e.g. "play none none reverse". Defaults to
	// "play none none none". Ignored when scrubbing.
	ToggleActions string
	Animation     Animation

	// Scrub ties Animation progress to scroll progress. A positive
	// ScrubSmoothing makes the animation take that long to catch up.
	Scrub          bool
	ScrubSmoothing time.Duration

	OnEnter     func(*Trigger)
	OnLeave     func(*Trigger)
	OnEnterBack func(*Trigger)
	OnLeaveBack func(*Trigger)
	OnUpdate    func(*Trigger)
}

type triggerState int

const (
	stateBefore triggerState = iota
	stateActive
	stateAfter
)

var (
	// ErrNoTrigger is returned when TriggerVars has no trigger element.
	ErrNoTrigger = errors.New("scroll trigger: no trigger element")
	// ErrScopeReverted is returned when a trigger is requested from a scope
	// that has already been torn down.
	ErrScopeReverted = errors.New("motion: scope reverted")
)

// Trigger watches the scroll position relative to an element.
type Trigger struct {
	scroller *Scroller
	vars     TriggerVars
	startPos Position
	endPos   Position
	actions  [4]string

	start    float64
	end      float64
	progress float64
	state    triggerState
	dir      int
	synced   bool
	killed   bool
	scrub    *scrubber
}

func newTrigger(s *Scroller, vars TriggerVars) (*Trigger, error) {
	if vars.Trigger == nil {
		return nil, ErrNoTrigger
	}
	if vars.Start == "" {
		vars.Start = "top bottom"
	}
	if vars.End == "" {
		vars.End = "bottom top"
	}
	startPos, err := ParsePosition(vars.Start)
	if err != nil {
		return nil, fmt.Errorf("scroll trigger start: %w", err)
	}
	if startPos.Relative {
		return nil, fmt.Errorf("scroll trigger start %q cannot be relative", vars.Start)
	}
	endPos, err := ParsePosition(vars.End)
	if err != nil {
		return nil, fmt.Errorf("scroll trigger end: %w", err)
	}
	actions, err := parseToggleActions(vars.ToggleActions)
	if err != nil {
		return nil, err
	}

	t := &Trigger{
		scroller: s,
		vars:     vars,
		startPos: startPos,
		endPos:   endPos,
		actions:  actions,
	}
	if vars.Scrub && vars.Animation != nil && vars.ScrubSmoothing > 0 {
		t.scrub = &scrubber{ticker: s.ticker, anim: vars.Animation, dur: vars.ScrubSmoothing}
	}
	return t, nil
}

func parseToggleActions(s string) ([4]string, error) {
	out := [4]string{"play", "none", "none", "none"}
	if strings.TrimSpace(s) == "" {
		return out, nil
	}
	words := strings.Fields(s)
	if len(words) != 4 {
		return out, fmt.Errorf("toggle actions %q: want 4 words", s)
	}
	for i, w := range words {
		switch w {
		case "play", "pause", "resume", "reverse", "restart", "reset", "complete", "none":
			out[i] = w
		default:
			return out, fmt.Errorf("toggle actions %q: unknown action %q", s, w)
		}
	}
	return out, nil
}

// Start is the resolved scroll offset where the trigger becomes active.
func (t *Trigger) Start() float64 { return t.start }

// End is the resolved scroll offset where the trigger stops being active.
func (t *Trigger) End() float64 { return t.end }

// Progress is the clamped position of the scroll between Start and End.
func (t *Trigger) Progress() float64 { return t.progress }

// IsActive reports whether the scroll position is within [Start, End].
func (t *Trigger) IsActive() bool { return t.state == stateActive }

// Direction is 1 when the last scroll moved down the page, -1 when up.
func (t *Trigger) Direction() int { return t.dir }

// Killed reports whether the trigger has been removed.
func (t *Trigger) Killed() bool { return t.killed }

// Animation returns the linked animation, if any.
func (t *Trigger) Animation() Animation { return t.vars.Animation }

// OffsetAt is the scroll offset at progress p of this trigger's range.
func (t *Trigger) OffsetAt(p float64) float64 {
	return t.start + (t.end-t.start)*p
}

func (t *Trigger) refresh(viewportHeight float64) {
	r := t.vars.Trigger.Rect()
	t.start = t.startPos.Resolve(r, viewportHeight, 0)
	t.end = t.endPos.Resolve(r, viewportHeight, t.start)
	if t.end < t.start {
		t.end = t.start
	}
	if t.vars.Pin != nil {
		t.vars.Pin.Pin(t.end - t.start)
	}
}

func (t *Trigger) update(scroll, prevScroll float64) {
	if t.killed {
		return
	}
	switch {
	case scroll > prevScroll:
		t.dir = 1
	case scroll < prevScroll:
		t.dir = -1
	}

	next := stateActive
	switch {
	case scroll < t.start:
		next = stateBefore
	case scroll > t.end:
		next = stateAfter
	}

	var progress float64
	if t.end > t.start {
		progress = clamp01((scroll - t.start) / (t.end - t.start))
	} else if scroll >= t.start {
		progress = 1
	}

	prevState := t.state
	if !t.synced {
		prevState = stateBefore
	}
	changed := !t.synced || progress != t.progress
	t.synced = true
	t.state = next
	t.progress = progress

	if prevState != next {
		t.fireTransitions(prevState, next)
	}
	if t.killed {
		return
	}
	if changed {
		if t.vars.Scrub && t.vars.Animation != nil {
			if t.scrub != nil {
				t.scrub.retarget(progress)
			} else {
				t.vars.Animation.SetProgress(progress)
			}
		}
		if t.vars.OnUpdate != nil {
			t.vars.OnUpdate(t)
		}
	}
}

func (t *Trigger) fireTransitions(from, to triggerState) {
	const (
		enter = iota
		leave
		enterBack
		leaveBack
	)
	var seq []int
	switch {
	case from == stateBefore && to == stateActive:
		seq = []int{enter}
	case from == stateBefore && to == stateAfter:
		seq = []int{enter, leave}
	case from == stateActive && to == stateAfter:
		seq = []int{leave}
	case from == stateAfter && to == stateActive:
		seq = []int{enterBack}
	case from == stateAfter && to == stateBefore:
		seq = []int{enterBack, leaveBack}
	case from == stateActive && to == stateBefore:
		seq = []int{leaveBack}
	}
	callbacks := [4]func(*Trigger){t.vars.OnEnter, t.vars.OnLeave, t.vars.OnEnterBack, t.vars.OnLeaveBack}
	for _, ev := range seq {
		if t.killed {
			return
		}
		if cb := callbacks[ev]; cb != nil {
			cb(t)
		}
		if t.vars.Animation != nil && !t.vars.Scrub {
			applyAction(t.vars.Animation, t.actions[ev])
		}
	}
}

// Kill detaches the trigger: no further callbacks fire, the pin is released
// and any scrub catch-up stops. The linked animation is left as is.
func (t *Trigger) Kill() {
	if t.killed {
		return
	}
	t.killed = true
	if t.scrub != nil {
		t.scrub.stop()
	}
	if t.vars.Pin != nil {
		t.vars.Pin.Unpin()
	}
	t.scroller.remove(t)
}

// Revert is Kill, so triggers can sit in a Scope.
func (t *Trigger) Revert() { t.Kill() }

// scrubber eases an animation's progress toward the latest scroll progress.
type scrubber struct {
	ticker  *Ticker
	anim    Animation
	dur     time.Duration
	from    float64
	to      float64
	current float64
	elapsed time.Duration
	primed  bool
}

var scrubEase = PowerOut(3)

func (s *scrubber) retarget(p float64) {
	if !s.primed {
		s.primed = true
		s.current = s.anim.Progress()
	}
	s.from = s.current
	s.to = p
	s.elapsed = 0
	s.ticker.add(s)
}

func (s *scrubber) advance(dt time.Duration) bool {
	s.elapsed += dt
	f := 1.0
	if s.dur > 0 {
		f = clamp01(float64(s.elapsed) / float64(s.dur))
	}
	s.current = s.from + (s.to-s.from)*scrubEase(f)
	s.anim.SetProgress(s.current)
	return f < 1
}

func (s *scrubber) stop() { s.ticker.remove(s) }
