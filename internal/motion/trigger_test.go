package motion_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhruvvakharia/portfolio/internal/motion"
	"github.com/dhruvvakharia/portfolio/internal/motion/motiontest"
)

func TestPositionResolve(t *testing.T) {
	box := motion.Rect{Top: 1000, Height: 500}
	const vh = 800

	cases := []struct {
		pos   string
		start float64
		want  float64
	}{
		{"top 80%", 0, 360},
		{"top top", 0, 1000},
		{"bottom 20%", 0, 1340},
		{"center center", 0, 850},
		{"top+=100 bottom", 0, 300},
		{"top 100px", 0, 900},
		{"+=150%", 1000, 2200},
		{"+=1400", 1000, 2400},
		{"-=200", 1000, 800},
	}
	for _, c := range cases {
		p, err := motion.ParsePosition(c.pos)
		require.NoError(t, err, c.pos)
		assert.InDelta(t, c.want, p.Resolve(box, vh, c.start), 1e-9, c.pos)
	}
}

func TestParsePositionRejectsGarbage(t *testing.T) {
	for _, s := range []string{"top", "middle top", "+=abc", "top bottom extra", "top 1x%"} {
		_, err := motion.ParsePosition(s)
		assert.Error(t, err, s)
	}
}

type triggerFixture struct {
	clock  *motiontest.Clock
	view   *motiontest.Viewport
	engine *motion.Engine
	box    *motiontest.Box
	events []string
}

func newTriggerFixture() *triggerFixture {
	f := &triggerFixture{
		clock: motiontest.NewClock(),
		view:  motiontest.NewViewport(800),
		box:   &motiontest.Box{R: motion.Rect{Top: 1000, Height: 500}},
	}
	f.engine = motion.NewEngine(f.clock, f.view)
	return f
}

func (f *triggerFixture) record(name string) func(*motion.Trigger) {
	return func(*motion.Trigger) { f.events = append(f.events, name) }
}

func (f *triggerFixture) scroll(y float64) {
	f.view.Y = y
	f.engine.Scroller.Update()
}

func (f *triggerFixture) vars() motion.TriggerVars {
	return motion.TriggerVars{
		Trigger:     f.box,
		Start:       "top 80%",
		End:         "bottom 20%",
		OnEnter:     f.record("enter"),
		OnLeave:     f.record("leave"),
		OnEnterBack: f.record("enterBack"),
		OnLeaveBack: f.record("leaveBack"),
	}
}

func TestTriggerCallbackSequence(t *testing.T) {
	f := newTriggerFixture()
	tr, err := f.engine.Scroller.Create(f.vars())
	require.NoError(t, err)
	assert.Equal(t, 360.0, tr.Start())
	assert.Equal(t, 1340.0, tr.End())
	assert.Empty(t, f.events)

	f.scroll(500)
	assert.True(t, tr.IsActive())
	f.scroll(2000)
	f.scroll(1000)
	assert.Equal(t, -1, tr.Direction())
	f.scroll(0)

	assert.Equal(t, []string{"enter", "leave", "enterBack", "leaveBack"}, f.events)
}

func TestTriggerJumpPastFiresBoth(t *testing.T) {
	f := newTriggerFixture()
	_, err := f.engine.Scroller.Create(f.vars())
	require.NoError(t, err)

	f.scroll(5000)
	f.scroll(0)
	assert.Equal(t, []string{"enter", "leave", "enterBack", "leaveBack"}, f.events)
}

func TestTriggerSyncsOnCreate(t *testing.T) {
	f := newTriggerFixture()
	f.view.Y = 500

	tr, err := f.engine.Scroller.Create(f.vars())
	require.NoError(t, err)
	assert.Equal(t, []string{"enter"}, f.events)
	assert.InDelta(t, 140.0/980, tr.Progress(), 1e-9)
}

func TestTriggerToggleActions(t *testing.T) {
	f := newTriggerFixture()
	target := motiontest.NewTarget()
	tw, err := motion.NewTween(f.engine.Ticker, motiontest.Targets(target), motion.FadeIn.Vars(motion.TweenVars{Paused: true}))
	require.NoError(t, err)

	vars := f.vars()
	vars.Animation = tw
	vars.ToggleActions = "play none none reverse"
	_, err = f.engine.Scroller.Create(vars)
	require.NoError(t, err)

	f.scroll(500)
	assert.True(t, tw.IsActive())
	f.clock.Step(motion.Normal+motion.FrameInterval, motion.FrameInterval)
	assert.Equal(t, 1.0, target.Float("opacity"))

	f.scroll(0)
	f.clock.Step(motion.Normal+motion.FrameInterval, motion.FrameInterval)
	assert.Equal(t, 0.0, target.Float("opacity"))
}

func TestTriggerScrubSetsProgress(t *testing.T) {
	f := newTriggerFixture()
	tw, err := motion.NewTween(f.engine.Ticker, motiontest.Targets(motiontest.NewTarget()), motion.TweenVars{
		From: motion.Props{"x": 0}, To: motion.Props{"x": 100}, Duration: time.Second, Ease: motion.Linear, Paused: true,
	})
	require.NoError(t, err)

	vars := f.vars()
	vars.Animation = tw
	vars.Scrub = true
	_, err = f.engine.Scroller.Create(vars)
	require.NoError(t, err)

	f.scroll(850)
	assert.InDelta(t, 0.5, tw.Progress(), 1e-9)
	assert.False(t, tw.IsActive(), "scrubbed animations never play on their own")
}

func TestTriggerScrubSmoothingCatchesUp(t *testing.T) {
	f := newTriggerFixture()
	tw, err := motion.NewTween(f.engine.Ticker, motiontest.Targets(motiontest.NewTarget()), motion.TweenVars{
		From: motion.Props{"x": 0}, To: motion.Props{"x": 100}, Duration: time.Second, Ease: motion.Linear, Paused: true,
	})
	require.NoError(t, err)

	vars := f.vars()
	vars.Animation = tw
	vars.Scrub = true
	vars.ScrubSmoothing = time.Second
	_, err = f.engine.Scroller.Create(vars)
	require.NoError(t, err)

	f.scroll(850)
	assert.Less(t, tw.Progress(), 0.5)
	f.clock.Step(1100*time.Millisecond, motion.FrameInterval)
	assert.InDelta(t, 0.5, tw.Progress(), 1e-9)
	assert.Equal(t, 0, f.engine.Ticker.Active())
}

func TestTriggerPinReservesDistance(t *testing.T) {
	f := newTriggerFixture()
	tr, err := f.engine.Scroller.Create(motion.TriggerVars{
		Trigger: f.box,
		Start:   "top top",
		End:     "+=1400",
		Pin:     f.box,
	})
	require.NoError(t, err)
	assert.Equal(t, 1400.0, f.box.Pinned)
	assert.Equal(t, 1700.0, tr.OffsetAt(0.5))

	tr.Kill()
	assert.True(t, tr.Killed())
	assert.Equal(t, 1, f.box.Unpins)
	assert.Empty(t, f.engine.Scroller.Triggers())

	tr.Kill()
	assert.Equal(t, 1, f.box.Unpins)
}

func TestTriggerKilledFromCallback(t *testing.T) {
	f := newTriggerFixture()
	vars := f.vars()
	vars.OnEnter = func(tr *motion.Trigger) {
		f.events = append(f.events, "enter")
		tr.Kill()
	}
	_, err := f.engine.Scroller.Create(vars)
	require.NoError(t, err)

	f.scroll(5000)
	f.scroll(0)
	assert.Equal(t, []string{"enter"}, f.events)
}

func TestTriggerVarsValidation(t *testing.T) {
	f := newTriggerFixture()

	_, err := f.engine.Scroller.Create(motion.TriggerVars{})
	assert.ErrorIs(t, err, motion.ErrNoTrigger)

	_, err = f.engine.Scroller.Create(motion.TriggerVars{Trigger: f.box, ToggleActions: "play"})
	assert.Error(t, err)

	_, err = f.engine.Scroller.Create(motion.TriggerVars{Trigger: f.box, ToggleActions: "play none none explode"})
	assert.Error(t, err)

	_, err = f.engine.Scroller.Create(motion.TriggerVars{Trigger: f.box, Start: "+=10"})
	assert.Error(t, err)
}

func TestScrollerRefreshPicksUpLayout(t *testing.T) {
	f := newTriggerFixture()
	tr, err := f.engine.Scroller.Create(f.vars())
	require.NoError(t, err)

	f.box.R.Top = 2000
	f.engine.Scroller.Refresh()
	assert.Equal(t, 1360.0, tr.Start())
}
