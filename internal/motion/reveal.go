package motion

import (
	"strings"
	"time"
)

// Word reveal timing: each word owns a half-second slice of the scrubbed
// timeline and starts 30ms after the previous one.
const (
	WordDuration = 500 * time.Millisecond
	WordStagger  = 30 * time.Millisecond
)

// Word reveal colours.
var (
	DimWord  = RGBA{R: 255, G: 255, B: 255, A: 0.2}
	FullWord = RGBA{R: 255, G: 255, B: 255, A: 1}
)

// SplitWords splits text on runs of whitespace, dropping empty words.
func SplitWords(text string) []string {
	return strings.Fields(text)
}

// WordReveal lights a run of words from a dim colour to full contrast in
// reading order as scroll progress goes from 0 to 1. The easing is linear.
type WordReveal struct {
	Words    int
	Duration time.Duration
	Stagger  time.Duration
	From, To RGBA
}

// NewWordReveal returns the standard reveal for n words.
func NewWordReveal(n int) WordReveal {
	return WordReveal{
		Words:    n,
		Duration: WordDuration,
		Stagger:  WordStagger,
		From:     DimWord,
		To:       FullWord,
	}
}

// Total is the scrubbed timeline length.
func (w WordReveal) Total() time.Duration {
	if w.Words <= 0 {
		return 0
	}
	return w.Duration + time.Duration(w.Words-1)*w.Stagger
}

// WordProgress is how far word i is through its colour change at overall
// progress p.
func (w WordReveal) WordProgress(p float64, i int) float64 {
	if w.Duration <= 0 {
		return 1
	}
	t := clamp01(p) * float64(w.Total())
	local := t - float64(time.Duration(i)*w.Stagger)
	return clamp01(local / float64(w.Duration))
}

// ColorAt is word i's colour at overall progress p.
func (w WordReveal) ColorAt(p float64, i int) RGBA {
	return w.From.Lerp(w.To, w.WordProgress(p, i))
}

// Vars builds the colour tween for the reveal, scrubbed by trigger.
func (w WordReveal) Vars(trigger *TriggerVars) TweenVars {
	return TweenVars{
		From:          Props{"color": w.From},
		To:            Props{"color": w.To},
		Duration:      w.Duration,
		Stagger:       w.Stagger,
		Ease:          Linear,
		ScrollTrigger: trigger,
	}
}
