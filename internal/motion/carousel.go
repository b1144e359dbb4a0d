package motion

import (
	"fmt"
	"time"
)

// Testimonial carousel timing.
const (
	CarouselInterval = 5 * time.Second
	CarouselCooldown = 10 * time.Second
)

// CarouselConfig configures a Carousel.
type CarouselConfig struct {
	Items    int
	Interval time.Duration
	Cooldown time.Duration
	Clock    Clock
	OnChange func(index int)
}

// Carousel cycles through Items on a timer. Manual moves pause the timer until
// Cooldown has passed since the most recent manual move.
type Carousel struct {
	cfg     CarouselConfig
	index   int
	auto    bool
	stopped bool
	tick    Timer
	resume  Timer
}

// NewCarousel returns a stopped carousel at index 0.
func NewCarousel(cfg CarouselConfig) (*Carousel, error) {
	if cfg.Items <= 0 {
		return nil, fmt.Errorf("carousel: need at least one item, got %d", cfg.Items)
	}
	if cfg.Clock == nil {
		return nil, fmt.Errorf("carousel: no clock")
	}
	if cfg.Interval <= 0 {
		cfg.Interval = CarouselInterval
	}
	if cfg.Cooldown < 0 {
		cfg.Cooldown = 0
	}
	return &Carousel{cfg: cfg}, nil
}

// Index is the current item.
func (c *Carousel) Index() int { return c.index }

// Auto reports whether automatic advancing is running.
func (c *Carousel) Auto() bool { return c.auto }

// Start begins automatic advancing.
func (c *Carousel) Start() {
	if c.stopped || c.auto {
		return
	}
	c.auto = true
	c.schedule()
}

// Next moves forward one item, wrapping at the end.
func (c *Carousel) Next() { c.manual(c.index + 1) }

// Prev moves back one item, wrapping at the start.
func (c *Carousel) Prev() { c.manual(c.index - 1) }

// Jump moves to item i, taken modulo the item count.
func (c *Carousel) Jump(i int) { c.manual(i) }

func (c *Carousel) manual(i int) {
	if c.stopped {
		return
	}
	c.set(i)
	c.auto = false
	stop(&c.tick)
	stop(&c.resume)
	c.resume = c.cfg.Clock.AfterFunc(c.cfg.Cooldown, func() {
		c.resume = nil
		if c.stopped {
			return
		}
		c.auto = true
		c.schedule()
	})
}

func (c *Carousel) schedule() {
	stop(&c.tick)
	c.tick = c.cfg.Clock.AfterFunc(c.cfg.Interval, c.advance)
}

func (c *Carousel) advance() {
	c.tick = nil
	if c.stopped || !c.auto {
		return
	}
	c.set(c.index + 1)
	c.schedule()
}

func (c *Carousel) set(i int) {
	n := c.cfg.Items
	i = ((i % n) + n) % n
	if i == c.index {
		return
	}
	c.index = i
	if c.cfg.OnChange != nil {
		c.cfg.OnChange(i)
	}
}

// Revert stops the carousel and cancels its timers.
func (c *Carousel) Revert() {
	c.stopped = true
	c.auto = false
	stop(&c.tick)
	stop(&c.resume)
}

func stop(t *Timer) {
	if *t != nil {
		(*t).Stop()
		*t = nil
	}
}
