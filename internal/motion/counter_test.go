package motion_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dhruvvakharia/portfolio/internal/motion"
	"github.com/dhruvvakharia/portfolio/internal/motion/motiontest"
)

func TestCountAt(t *testing.T) {
	assert.Equal(t, 0, motion.CountAt(100, 0, motion.CountDuration))
	assert.Equal(t, 88, motion.CountAt(100, motion.CountDuration/2, motion.CountDuration))
	assert.Equal(t, 100, motion.CountAt(100, motion.CountDuration, motion.CountDuration))
	assert.Equal(t, 100, motion.CountAt(100, 2*motion.CountDuration, motion.CountDuration))
	assert.Equal(t, 7, motion.CountAt(7, 0, 0))
}

func TestCountUpReachesTargetsMonotonically(t *testing.T) {
	clock := motiontest.NewClock()
	engine := motion.NewEngine(clock, motiontest.NewViewport(800))
	targets := []int{50, 120, 15}

	history := make([][]int, len(targets))
	cu := motion.NewCountUp(engine, targets, func(i, v int) {
		history[i] = append(history[i], v)
	})
	assert.Equal(t, []int{0, 0, 0}, cu.Values())
	assert.False(t, cu.Fired())

	assert.True(t, cu.Fire())
	assert.False(t, cu.Fire())

	clock.Step(100*time.Millisecond, motion.FrameInterval)
	values := cu.Values()
	assert.Greater(t, values[0], 0)
	assert.Equal(t, 0, values[2], "third counter starts after two staggers")

	clock.Step(motion.CountDuration+2*motion.CountStagger, motion.FrameInterval)
	assert.Equal(t, targets, cu.Values())
	for i, h := range history {
		for j := 1; j < len(h); j++ {
			assert.GreaterOrEqual(t, h[j], h[j-1], "counter %d went backwards", i)
		}
		assert.Equal(t, targets[i], h[len(h)-1])
	}
	assert.Equal(t, 0, engine.Ticker.Active())
	assert.Equal(t, 0, clock.Pending())
}

func TestCountUpRevertFreezes(t *testing.T) {
	clock := motiontest.NewClock()
	engine := motion.NewEngine(clock, motiontest.NewViewport(800))
	cu := motion.NewCountUp(engine, []int{1000, 1000}, nil)

	cu.Fire()
	clock.Step(time.Second, motion.FrameInterval)
	cu.Revert()
	frozen := cu.Values()

	clock.Step(5*time.Second, motion.FrameInterval)
	assert.Equal(t, frozen, cu.Values())
	assert.Less(t, frozen[0], 1000)
	assert.Equal(t, 0, clock.Pending())
}
