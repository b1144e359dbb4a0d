package motion_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhruvvakharia/portfolio/internal/motion"
	"github.com/dhruvvakharia/portfolio/internal/motion/motiontest"
)

func TestStepIndex(t *testing.T) {
	cases := []struct {
		p    float64
		n    int
		want int
	}{
		{0, 4, 0},
		{0.25 - 1e-9, 4, 0},
		{0.25, 4, 1},
		{0.5, 4, 2},
		{0.99, 4, 3},
		{1, 4, 3},
		{1.5, 4, 3},
		{-1, 4, 0},
		{0.5, 1, 0},
		{0.5, 0, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, motion.StepIndex(c.p, c.n), "StepIndex(%v, %d)", c.p, c.n)
	}
}

func TestStepIndexBucketsEveryPanel(t *testing.T) {
	const n = 6
	for k := 0; k < n; k++ {
		lo := float64(k) / n
		hi := float64(k+1) / n
		assert.Equal(t, k, motion.StepIndex(lo+1e-9, n))
		assert.Equal(t, k, motion.StepIndex(hi-1e-9, n))
	}
}

type stepChange struct {
	index int
	dir   motion.Direction
}

func newTestStepper(t *testing.T, clock *motiontest.Clock, scrolls *[]float64) (*motion.Stepper, *[]stepChange) {
	t.Helper()
	var changes []stepChange
	s, err := motion.NewStepper(motion.StepperConfig{
		Panels:   4,
		Cooldown: motion.PanelCooldown,
		Clock:    clock,
		OnChange: func(i int, d motion.Direction) { changes = append(changes, stepChange{i, d}) },
		ScrollTo: func(y float64) { *scrolls = append(*scrolls, y) },
	})
	require.NoError(t, err)
	return s, &changes
}

func TestStepperCooldownDropsUpdates(t *testing.T) {
	clock := motiontest.NewClock()
	var scrolls []float64
	s, changes := newTestStepper(t, clock, &scrolls)

	assert.Equal(t, 0, s.Index())
	assert.False(t, s.Update(0.1))

	assert.True(t, s.Update(0.3))
	assert.Equal(t, 1, s.Index())
	assert.True(t, s.Busy())

	assert.False(t, s.Update(0.6), "changes during the cooldown are dropped")
	clock.Advance(motion.PanelCooldown - time.Nanosecond)
	assert.False(t, s.Update(0.6))
	assert.Equal(t, 1, s.Index())

	clock.Advance(time.Nanosecond)
	assert.False(t, s.Busy())
	assert.True(t, s.Update(0.6))
	assert.Equal(t, 2, s.Index())

	clock.Advance(motion.PanelCooldown)
	assert.True(t, s.Update(0.1), "indices may be skipped")
	assert.Equal(t, 0, s.Index())
	assert.Equal(t, motion.Backward, s.Direction())

	assert.Equal(t, []stepChange{{1, motion.Forward}, {2, motion.Forward}, {0, motion.Backward}}, *changes)
	assert.Empty(t, scrolls)
}

func TestStepperSelectScrollsToPanel(t *testing.T) {
	clock := motiontest.NewClock()
	var scrolls []float64
	s, changes := newTestStepper(t, clock, &scrolls)
	s.SetRange(1000, 2400)

	assert.False(t, s.Select(0), "current panel")
	assert.False(t, s.Select(4))
	assert.False(t, s.Select(-1))

	assert.True(t, s.Select(2))
	assert.Equal(t, []float64{1875}, scrolls)
	assert.Equal(t, []stepChange{{2, motion.Forward}}, *changes)

	assert.False(t, s.Select(3), "busy")
	clock.Advance(motion.PanelCooldown)
	assert.True(t, s.Select(1))
	assert.Equal(t, motion.Backward, s.Direction())
	assert.Equal(t, []float64{1875, 1525}, scrolls)
}

func TestStepperSelectHoldsOffScrollUpdates(t *testing.T) {
	clock := motiontest.NewClock()
	var scrolls []float64
	s, changes := newTestStepper(t, clock, &scrolls)
	s.SetRange(1000, 2400)

	require.True(t, s.Select(2))
	// The smooth scroll to panel 2 passes through panel 1's range.
	assert.False(t, s.Update(0.3))
	assert.False(t, s.Update(0.1))
	assert.Equal(t, 2, s.Index())
	assert.Equal(t, []stepChange{{2, motion.Forward}}, *changes)

	clock.Advance(motion.PanelCooldown)
	assert.False(t, s.Update(0.625), "landed on the selected panel")
	assert.True(t, s.Update(0.3))
	assert.Equal(t, 1, s.Index())
	assert.Equal(t, motion.Backward, s.Direction())
	assert.Equal(t, []float64{1875}, scrolls)
}

func TestStepperRevert(t *testing.T) {
	clock := motiontest.NewClock()
	var scrolls []float64
	s, changes := newTestStepper(t, clock, &scrolls)

	require.True(t, s.Update(0.3))
	s.Revert()
	assert.Equal(t, 0, clock.Pending())
	assert.False(t, s.Update(0.9))
	assert.False(t, s.Select(3))
	assert.Len(t, *changes, 1)
}

func TestNewStepperValidates(t *testing.T) {
	_, err := motion.NewStepper(motion.StepperConfig{Panels: 0, Clock: motiontest.NewClock()})
	assert.Error(t, err)
	_, err = motion.NewStepper(motion.StepperConfig{Panels: 3})
	assert.Error(t, err)
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "down", motion.Forward.String())
	assert.Equal(t, "up", motion.Backward.String())
	assert.Equal(t, 1400.0, motion.Distance(4))
}
