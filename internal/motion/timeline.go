package motion

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimelineDefaults fill in tween fields left zero by children.
type TimelineDefaults struct {
	Ease     Ease
	Duration time.Duration
}

// Timeline sequences child tweens and callbacks at relative offsets and plays
// them as a unit.
type Timeline struct {
	playhead
	defaults  TimelineDefaults
	children  []*timelineChild
	end       time.Duration
	lastStart time.Duration
	prev      time.Duration
}

type timelineChild struct {
	start    time.Duration
	tween    *Tween
	call     func()
	rendered time.Duration
}

// NewTimeline returns an empty timeline. Timelines start paused; call Play
// once the children are in place.
func NewTimeline(ticker *Ticker, defaults TimelineDefaults) *Timeline {
	tl := &Timeline{defaults: defaults}
	tl.playhead = playhead{
		ticker: ticker,
		render: tl.renderAt,
		total:  func() time.Duration { return tl.end },
	}
	return tl
}

// OnComplete sets the callback run when forward playback reaches the end.
func (tl *Timeline) OnComplete(f func()) { tl.onComplete = f }

// FromTo appends a tween at position. See ResolvePosition for the syntax.
func (tl *Timeline) FromTo(targets []Target, vars TweenVars, position string) (*Tween, error) {
	if vars.Ease == nil {
		vars.Ease = tl.defaults.Ease
	}
	if vars.Duration == 0 {
		vars.Duration = tl.defaults.Duration
	}
	vars.Paused = true
	tw, err := newTween(tl.ticker, targets, vars)
	if err != nil {
		return nil, err
	}
	start, err := tl.ResolvePosition(position)
	if err != nil {
		return nil, err
	}
	tl.insert(&timelineChild{start: start, tween: tw}, tw.Duration())
	return tw, nil
}

// Call schedules f at position.
func (tl *Timeline) Call(f func(), position string) error {
	start, err := tl.ResolvePosition(position)
	if err != nil {
		return err
	}
	tl.insert(&timelineChild{start: start, call: f}, 0)
	return nil
}

func (tl *Timeline) insert(c *timelineChild, d time.Duration) {
	tl.children = append(tl.children, c)
	tl.lastStart = c.start
	if e := c.start + d; e > tl.end {
		tl.end = e
	}
}

// ResolvePosition turns a position string into a start offset:
//
//	""       end of the timeline
//	">"      end of the timeline
//	"<"      start of the previously added child
//	"+=0.2"  0.2s after the end
//	"-=0.5"  0.5s before the end (overlap)
//	"1.5"    absolute, in seconds
//
// Offsets never go below zero.
func (tl *Timeline) ResolvePosition(pos string) (time.Duration, error) {
	pos = strings.TrimSpace(pos)
	var at time.Duration
	switch {
	case pos == "" || pos == ">":
		at = tl.end
	case pos == "<":
		at = tl.lastStart
	case strings.HasPrefix(pos, "+="), strings.HasPrefix(pos, "-="):
		d, err := parseSeconds(pos[2:])
		if err != nil {
			return 0, fmt.Errorf("timeline position %q: %w", pos, err)
		}
		if pos[0] == '-' {
			d = -d
		}
		at = tl.end + d
	default:
		d, err := parseSeconds(pos)
		if err != nil {
			return 0, fmt.Errorf("timeline position %q: %w", pos, err)
		}
		at = d
	}
	if at < 0 {
		at = 0
	}
	return at, nil
}

// StartOf reports where a child tween was placed.
func (tl *Timeline) StartOf(tw *Tween) (time.Duration, bool) {
	for _, c := range tl.children {
		if c.tween == tw {
			return c.start, true
		}
	}
	return 0, false
}

func (tl *Timeline) renderAt(t time.Duration) {
	prev := tl.prev
	tl.prev = t
	for _, c := range tl.children {
		local := t - c.start
		if c.call != nil {
			if t > prev && c.start <= t && (c.start > prev || prev == 0 && c.start == 0) {
				c.call()
			}
			continue
		}
		switch {
		case local >= 0:
			if d := c.tween.Duration(); local > d {
				local = d
			}
			c.tween.renderAt(local)
			c.rendered = local
		case c.rendered > 0:
			c.tween.renderAt(0)
			c.rendered = 0
		}
	}
}

// Revert stops the timeline and reverts every child tween.
func (tl *Timeline) Revert() {
	tl.Pause()
	for i := len(tl.children) - 1; i >= 0; i-- {
		if tw := tl.children[i].tween; tw != nil {
			tw.Revert()
		}
	}
}

func parseSeconds(s string) (time.Duration, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	return time.Duration(f * float64(time.Second)), nil
}

// Seconds converts a fractional second count to a Duration.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
