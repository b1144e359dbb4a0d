package motion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhruvvakharia/portfolio/internal/motion"
	"github.com/dhruvvakharia/portfolio/internal/motion/motiontest"
)

func TestSplitWords(t *testing.T) {
	assert.Equal(t, []string{"Hello", "brave", "new", "world"}, motion.SplitWords("  Hello   brave\nnew world "))
	assert.Empty(t, motion.SplitWords(" \t "))
}

func TestWordRevealProgress(t *testing.T) {
	w := motion.NewWordReveal(10)
	assert.Equal(t, motion.WordDuration+9*motion.WordStagger, w.Total())

	for i := 0; i < 10; i++ {
		assert.Equal(t, 0.0, w.WordProgress(0, i))
		assert.Equal(t, 1.0, w.WordProgress(1, i))
	}
	assert.Equal(t, motion.DimWord, w.ColorAt(0, 0))
	assert.Equal(t, motion.FullWord, w.ColorAt(1, 9))

	for i := 1; i < 10; i++ {
		assert.LessOrEqual(t, w.WordProgress(0.5, i), w.WordProgress(0.5, i-1), "words light in reading order")
	}
	assert.Zero(t, motion.NewWordReveal(0).Total())
}

func TestWordRevealScrubbedByScroll(t *testing.T) {
	clock := motiontest.NewClock()
	view := motiontest.NewViewport(800)
	engine := motion.NewEngine(clock, view)
	scope := engine.NewScope()
	section := &motiontest.Box{R: motion.Rect{Top: 1000, Height: 800}}

	words := []*motiontest.Target{motiontest.NewTarget(), motiontest.NewTarget(), motiontest.NewTarget()}
	reveal := motion.NewWordReveal(len(words))
	_, err := scope.FromTo(motiontest.Targets(words...), reveal.Vars(&motion.TriggerVars{
		Trigger: section,
		Start:   "top top",
		End:     "+=150%",
		Pin:     section,
		Scrub:   true,
	}))
	require.NoError(t, err)
	assert.Equal(t, 1200.0, section.Pinned)

	for _, w := range words {
		assert.Equal(t, motion.DimWord, w.Props["color"])
	}

	view.Y = 2200
	engine.Scroller.Update()
	for _, w := range words {
		assert.Equal(t, motion.FullWord, w.Props["color"])
	}

	view.Y = 0
	engine.Scroller.Update()
	for _, w := range words {
		assert.Equal(t, motion.DimWord, w.Props["color"])
	}

	scope.Revert()
	assert.Empty(t, words[0].Props)
	assert.Equal(t, 1, section.Unpins)
}
