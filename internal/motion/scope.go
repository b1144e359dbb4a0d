package motion

import (
	"reflect"
	"time"
)

// Engine bundles the clock, frame loop and scroll observer registry of one
// page.
type Engine struct {
	Clock    Clock
	Ticker   *Ticker
	Scroller *Scroller
}

// NewEngine wires a ticker and a scroller onto clock and view.
func NewEngine(clock Clock, view Viewport) *Engine {
	ticker := NewTicker(clock)
	return &Engine{
		Clock:    clock,
		Ticker:   ticker,
		Scroller: NewScroller(view, ticker),
	}
}

// Disposable is anything a Scope can tear down.
type Disposable interface {
	Revert()
}

// DisposeFunc adapts a plain function to Disposable.
type DisposeFunc func()

func (f DisposeFunc) Revert() { f() }

// Scope collects every tween, timeline, trigger and timer created through it
// so they can be torn down together. Members are reverted in reverse order of
// creation. Anything added after Revert is reverted immediately, so late
// callbacks of a dead scope cannot leak work.
type Scope struct {
	engine   *Engine
	items    []Disposable
	reverted bool
}

// NewScope returns an empty scope on e.
func (e *Engine) NewScope() *Scope {
	return &Scope{engine: e}
}

// Engine returns the engine the scope schedules on.
func (s *Scope) Engine() *Engine { return s.engine }

// Clock is shorthand for Engine().Clock.
func (s *Scope) Clock() Clock { return s.engine.Clock }

// Len reports how many members the scope holds.
func (s *Scope) Len() int { return len(s.items) }

// Reverted reports whether Revert has run.
func (s *Scope) Reverted() bool { return s.reverted }

// Add records d.
func (s *Scope) Add(d Disposable) {
	if s.reverted {
		d.Revert()
		return
	}
	s.items = append(s.items, d)
}

// Cleanup records f to run on Revert.
func (s *Scope) Cleanup(f func()) { s.Add(DisposeFunc(f)) }

// FromTo creates a tween from vars.From to vars.To. With vars.ScrollTrigger
// set the tween waits for, or is scrubbed by, a scroll trigger created in the
// same scope.
func (s *Scope) FromTo(targets []Target, vars TweenVars) (*Tween, error) {
	st := vars.ScrollTrigger
	if st != nil {
		vars.Paused = true
	}
	tw, err := NewTween(s.engine.Ticker, targets, vars)
	if err != nil {
		return nil, err
	}
	s.Add(tw)
	if st != nil {
		tv := *st
		tv.Animation = tw
		if _, err := s.Trigger(tv); err != nil {
			return nil, err
		}
	}
	return tw, nil
}

// Preset creates a FromTo tween from a named preset, overriding duration,
// delay and stagger when set in extra.
func (s *Scope) Preset(targets []Target, p Preset, extra TweenVars) (*Tween, error) {
	return s.FromTo(targets, p.Vars(extra))
}

// Timeline creates a paused timeline owned by the scope.
func (s *Scope) Timeline(defaults TimelineDefaults) *Timeline {
	tl := NewTimeline(s.engine.Ticker, defaults)
	s.Add(tl)
	return tl
}

// Trigger registers a scroll trigger owned by the scope.
func (s *Scope) Trigger(vars TriggerVars) (*Trigger, error) {
	if s.reverted {
		return nil, ErrScopeReverted
	}
	t, err := s.engine.Scroller.Create(vars)
	if err != nil {
		return nil, err
	}
	s.Add(t)
	return t, nil
}

// After runs f once after d unless the scope is reverted first.
func (s *Scope) After(d time.Duration, f func()) Timer {
	t := &scopedTimer{scope: s, f: f}
	t.inner = s.engine.Clock.AfterFunc(d, t.fire)
	s.Add(t)
	return t
}

// Revert tears down every member in reverse order. It is idempotent.
func (s *Scope) Revert() {
	if s.reverted {
		return
	}
	s.reverted = true
	items := s.items
	s.items = nil
	for i := len(items) - 1; i >= 0; i-- {
		items[i].Revert()
	}
}

type scopedTimer struct {
	scope   *Scope
	inner   Timer
	f       func()
	stopped bool
}

func (t *scopedTimer) fire() {
	if t.stopped || t.scope.reverted {
		return
	}
	t.stopped = true
	t.f()
}

func (t *scopedTimer) Stop() bool {
	if t.stopped {
		return false
	}
	t.stopped = true
	t.inner.Stop()
	return true
}

func (t *scopedTimer) Revert() { t.Stop() }

// Setup builds a scope's animations. The returned func, if any, runs before
// the scope is reverted.
type Setup func(s *Scope) func()

// Binding ties a Setup to a dependency list: the setup runs on Bind, and again
// after a full revert whenever Update sees different dependencies. Close
// reverts for good.
type Binding struct {
	engine  *Engine
	setup   Setup
	deps    []any
	scope   *Scope
	cleanup func()
	closed  bool
}

// Bind runs setup in a fresh scope.
func Bind(e *Engine, setup Setup, deps ...any) *Binding {
	b := &Binding{engine: e, setup: setup, deps: deps}
	b.run()
	return b
}

// Scope returns the scope of the current run.
func (b *Binding) Scope() *Scope { return b.scope }

// Update re-runs the setup if deps differ from the previous run. It reports
// whether a re-run happened.
func (b *Binding) Update(deps ...any) bool {
	if b.closed || sameDeps(b.deps, deps) {
		return false
	}
	b.teardown()
	b.deps = deps
	b.run()
	return true
}

// Close reverts the current run. Later Updates do nothing.
func (b *Binding) Close() {
	if b.closed {
		return
	}
	b.closed = true
	b.teardown()
}

func (b *Binding) run() {
	b.scope = b.engine.NewScope()
	b.cleanup = b.setup(b.scope)
}

func (b *Binding) teardown() {
	if b.cleanup != nil {
		b.cleanup()
		b.cleanup = nil
	}
	b.scope.Revert()
}

func sameDeps(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !reflect.DeepEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}
