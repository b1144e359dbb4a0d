package motion_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhruvvakharia/portfolio/internal/motion"
	"github.com/dhruvvakharia/portfolio/internal/motion/motiontest"
)

func heroTimeline(t *testing.T, ticker *motion.Ticker, targets []*motiontest.Target) (*motion.Timeline, []*motion.Tween) {
	t.Helper()
	tl := motion.NewTimeline(ticker, motion.TimelineDefaults{Ease: motion.PowerOut(3)})
	steps := []struct {
		dur time.Duration
		pos string
	}{
		{1200 * time.Millisecond, ""},
		{time.Second, "-=0.5"},
		{1500 * time.Millisecond, "-=0.5"},
		{time.Second, "-=0.5"},
	}
	var tweens []*motion.Tween
	for i, s := range steps {
		tw, err := tl.FromTo(motiontest.Targets(targets[i]), motion.TweenVars{
			From:     motion.Props{"opacity": 0, "y": 100},
			To:       motion.Props{"opacity": 1, "y": 0},
			Duration: s.dur,
		}, s.pos)
		require.NoError(t, err)
		tweens = append(tweens, tw)
	}
	return tl, tweens
}

func TestTimelineOverlapPositions(t *testing.T) {
	clock := motiontest.NewClock()
	targets := []*motiontest.Target{motiontest.NewTarget(), motiontest.NewTarget(), motiontest.NewTarget(), motiontest.NewTarget()}
	tl, tweens := heroTimeline(t, motion.NewTicker(clock), targets)

	want := []time.Duration{0, 700 * time.Millisecond, 1200 * time.Millisecond, 2200 * time.Millisecond}
	for i, tw := range tweens {
		start, ok := tl.StartOf(tw)
		require.True(t, ok)
		assert.Equal(t, want[i], start, "tween %d", i)
	}
	assert.Equal(t, 3200*time.Millisecond, tl.Duration())
	assert.False(t, tl.IsActive(), "timelines start paused")
}

func TestTimelineSeekRendersChildren(t *testing.T) {
	clock := motiontest.NewClock()
	targets := []*motiontest.Target{motiontest.NewTarget(), motiontest.NewTarget(), motiontest.NewTarget(), motiontest.NewTarget()}
	tl, _ := heroTimeline(t, motion.NewTicker(clock), targets)

	tl.SetProgress(0.5)
	assert.Equal(t, 1.0, targets[0].Float("opacity"))
	assert.Greater(t, targets[1].Float("opacity"), 0.0)
	assert.Equal(t, 0.0, targets[3].Float("opacity"))
	assert.Equal(t, 100.0, targets[3].Float("y"))

	tl.SetProgress(1)
	tl.SetProgress(0)
	for _, target := range targets {
		assert.Equal(t, 0.0, target.Float("opacity"))
	}
}

func TestTimelinePlaysThrough(t *testing.T) {
	clock := motiontest.NewClock()
	ticker := motion.NewTicker(clock)
	targets := []*motiontest.Target{motiontest.NewTarget(), motiontest.NewTarget(), motiontest.NewTarget(), motiontest.NewTarget()}
	tl, _ := heroTimeline(t, ticker, targets)

	completed := 0
	tl.OnComplete(func() { completed++ })
	tl.Play()
	clock.Step(3300*time.Millisecond, motion.FrameInterval)

	for _, target := range targets {
		assert.Equal(t, 1.0, target.Float("opacity"))
		assert.Equal(t, 0.0, target.Float("y"))
	}
	assert.Equal(t, 1, completed)
	assert.Equal(t, 0, ticker.Active())
}

func TestTimelineCallsFireOnce(t *testing.T) {
	clock := motiontest.NewClock()
	tl := motion.NewTimeline(motion.NewTicker(clock), motion.TimelineDefaults{})
	var order []string

	require.NoError(t, tl.Call(func() { order = append(order, "start") }, "0"))
	_, err := tl.FromTo(motiontest.Targets(motiontest.NewTarget()), motion.FadeIn.Vars(motion.TweenVars{}), "")
	require.NoError(t, err)
	require.NoError(t, tl.Call(func() { order = append(order, "end") }, ">"))

	tl.Play()
	clock.Step(time.Second, motion.FrameInterval)
	assert.Equal(t, []string{"start", "end"}, order)
}

func TestTimelineResolvePosition(t *testing.T) {
	tl := motion.NewTimeline(motion.NewTicker(motiontest.NewClock()), motion.TimelineDefaults{Duration: time.Second})

	at, err := tl.ResolvePosition("-=1")
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), at, "offsets clamp at zero")

	_, err = tl.FromTo(motiontest.Targets(motiontest.NewTarget()), motion.FadeIn.Vars(motion.TweenVars{Duration: time.Second}), "0.5")
	require.NoError(t, err)

	cases := map[string]time.Duration{
		"":      1500 * time.Millisecond,
		">":     1500 * time.Millisecond,
		"<":     500 * time.Millisecond,
		"+=0.2": 1700 * time.Millisecond,
		"-=0.5": time.Second,
		"2":     2 * time.Second,
	}
	for pos, want := range cases {
		at, err := tl.ResolvePosition(pos)
		require.NoError(t, err, pos)
		assert.Equal(t, want, at, pos)
	}

	_, err = tl.ResolvePosition("soon")
	assert.Error(t, err)
}

func TestTimelineRevertClearsChildren(t *testing.T) {
	clock := motiontest.NewClock()
	ticker := motion.NewTicker(clock)
	targets := []*motiontest.Target{motiontest.NewTarget(), motiontest.NewTarget(), motiontest.NewTarget(), motiontest.NewTarget()}
	tl, _ := heroTimeline(t, ticker, targets)

	tl.Play()
	clock.Step(500*time.Millisecond, motion.FrameInterval)
	tl.Revert()

	for _, target := range targets {
		assert.Empty(t, target.Props)
	}
	assert.Equal(t, 0, ticker.Active())
	assert.Equal(t, 0, clock.Pending())
}
