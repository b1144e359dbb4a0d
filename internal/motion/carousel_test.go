package motion_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhruvvakharia/portfolio/internal/motion"
	"github.com/dhruvvakharia/portfolio/internal/motion/motiontest"
)

func newTestCarousel(t *testing.T, clock *motiontest.Clock, items int) (*motion.Carousel, *[]int) {
	t.Helper()
	var changes []int
	c, err := motion.NewCarousel(motion.CarouselConfig{
		Items:    items,
		Interval: motion.CarouselInterval,
		Cooldown: motion.CarouselCooldown,
		Clock:    clock,
		OnChange: func(i int) { changes = append(changes, i) },
	})
	require.NoError(t, err)
	return c, &changes
}

func TestCarouselAutoAdvanceWraps(t *testing.T) {
	clock := motiontest.NewClock()
	c, changes := newTestCarousel(t, clock, 3)

	clock.Advance(time.Minute)
	assert.Empty(t, *changes, "nothing moves before Start")

	c.Start()
	c.Start()
	assert.True(t, c.Auto())
	for i := 0; i < 3; i++ {
		clock.Advance(motion.CarouselInterval)
	}
	assert.Equal(t, []int{1, 2, 0}, *changes)
	assert.Equal(t, 0, c.Index())
}

func TestCarouselManualMovePausesAuto(t *testing.T) {
	clock := motiontest.NewClock()
	c, changes := newTestCarousel(t, clock, 3)
	c.Start()

	clock.Advance(2 * time.Second)
	c.Next()
	assert.Equal(t, 1, c.Index())
	assert.False(t, c.Auto())

	clock.Advance(motion.CarouselCooldown - time.Second)
	assert.Equal(t, 1, c.Index(), "no auto advance during the cooldown")

	clock.Advance(time.Second)
	assert.True(t, c.Auto())
	clock.Advance(motion.CarouselInterval - time.Millisecond)
	assert.Equal(t, 1, c.Index())
	clock.Advance(time.Millisecond)
	assert.Equal(t, 2, c.Index())

	assert.Equal(t, []int{1, 2}, *changes)
}

func TestCarouselCooldownRestartsOnEachInteraction(t *testing.T) {
	clock := motiontest.NewClock()
	c, _ := newTestCarousel(t, clock, 3)
	c.Start()

	c.Next()
	clock.Advance(8 * time.Second)
	c.Prev()
	assert.Equal(t, 0, c.Index())

	clock.Advance(8 * time.Second)
	assert.False(t, c.Auto(), "the earlier cooldown no longer resumes")
	clock.Advance(2 * time.Second)
	assert.True(t, c.Auto())
	clock.Advance(motion.CarouselInterval)
	assert.Equal(t, 1, c.Index())
}

func TestCarouselJumpWraps(t *testing.T) {
	clock := motiontest.NewClock()
	c, changes := newTestCarousel(t, clock, 3)

	c.Prev()
	assert.Equal(t, 2, c.Index())
	c.Jump(4)
	assert.Equal(t, 1, c.Index())
	c.Jump(1)
	assert.Equal(t, []int{2, 1}, *changes, "jumping to the current item is silent")
}

func TestCarouselSingleItemNeverChanges(t *testing.T) {
	clock := motiontest.NewClock()
	c, changes := newTestCarousel(t, clock, 1)
	c.Start()
	c.Next()
	clock.Advance(time.Minute)
	assert.Equal(t, 0, c.Index())
	assert.Empty(t, *changes)
}

func TestCarouselRevert(t *testing.T) {
	clock := motiontest.NewClock()
	c, changes := newTestCarousel(t, clock, 3)
	c.Start()
	c.Next()

	c.Revert()
	assert.Equal(t, 0, clock.Pending())
	c.Next()
	c.Start()
	clock.Advance(time.Minute)
	assert.Equal(t, []int{1}, *changes)
}

func TestNewCarouselValidates(t *testing.T) {
	_, err := motion.NewCarousel(motion.CarouselConfig{Clock: motiontest.NewClock()})
	assert.Error(t, err)
	_, err = motion.NewCarousel(motion.CarouselConfig{Items: 2})
	assert.Error(t, err)
}
