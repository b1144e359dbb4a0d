package motion

import (
	"math"
	"time"
)

// Count-up timing.
const (
	CountDuration = 4 * time.Second
	CountStagger  = 250 * time.Millisecond
)

// CountAt is the displayed value of a count-up to target after elapsed of
// duration: round(target * easeOutCubic(progress)).
func CountAt(target int, elapsed, duration time.Duration) int {
	p := 1.0
	if duration > 0 {
		p = clamp01(float64(elapsed) / float64(duration))
	}
	return int(math.Round(float64(target) * EaseOutCubic(p)))
}

// Counter animates one number from 0 to Target on the frame loop.
type Counter struct {
	ticker   *Ticker
	clock    Clock
	target   int
	duration time.Duration
	delay    time.Duration
	onValue  func(int)

	elapsed time.Duration
	value   int
	started bool
	done    bool
	wait    Timer
}

// Value is the last displayed value.
func (c *Counter) Value() int { return c.value }

// Start begins the count after the counter's delay. It reports false if the
// counter already started.
func (c *Counter) Start() bool {
	if c.started || c.done {
		return false
	}
	c.started = true
	c.wait = c.clock.AfterFunc(c.delay, func() {
		c.wait = nil
		if !c.done {
			c.ticker.add(c)
		}
	})
	return true
}

func (c *Counter) advance(dt time.Duration) bool {
	if c.done {
		return false
	}
	c.elapsed += dt
	if v := CountAt(c.target, c.elapsed, c.duration); v != c.value {
		c.value = v
		if c.onValue != nil {
			c.onValue(v)
		}
	}
	return c.elapsed < c.duration
}

// Revert stops the counter where it is.
func (c *Counter) Revert() {
	c.done = true
	stop(&c.wait)
	c.ticker.remove(c)
}

// CountUp is a group of counters that fire together, each delayed by
// CountStagger more than the previous. It fires at most once.
type CountUp struct {
	counters []*Counter
	fired    bool
}

// NewCountUp builds one counter per target. onValue receives the counter index
// and its new value.
func NewCountUp(e *Engine, targets []int, onValue func(i, v int)) *CountUp {
	cu := &CountUp{}
	for i, target := range targets {
		i := i
		cu.counters = append(cu.counters, &Counter{
			ticker:   e.Ticker,
			clock:    e.Clock,
			target:   target,
			duration: CountDuration,
			delay:    time.Duration(i) * CountStagger,
			onValue: func(v int) {
				if onValue != nil {
					onValue(i, v)
				}
			},
		})
	}
	return cu
}

// Fired reports whether Fire has run.
func (cu *CountUp) Fired() bool { return cu.fired }

// Fire starts every counter the first time it is called and reports whether
// it did anything.
func (cu *CountUp) Fire() bool {
	if cu.fired {
		return false
	}
	cu.fired = true
	for _, c := range cu.counters {
		c.Start()
	}
	return true
}

// Values returns the current displayed values.
func (cu *CountUp) Values() []int {
	out := make([]int, len(cu.counters))
	for i, c := range cu.counters {
		out[i] = c.value
	}
	return out
}

// Revert stops every counter.
func (cu *CountUp) Revert() {
	for _, c := range cu.counters {
		c.Revert()
	}
}
