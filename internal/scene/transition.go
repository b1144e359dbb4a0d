package scene

import (
	"strconv"
	"time"

	"github.com/dhruvvakharia/portfolio/internal/motion"
)

// LoadedKey is the session flag set once the first page load has played.
const LoadedKey = "portfolio.loaded"

// LoaderTiming is the pacing of the page-transition overlay.
type LoaderTiming struct {
	Initial time.Duration
	Text    time.Duration
	Delay   time.Duration
	Slide   time.Duration
}

// The first visit in a tab gets the slower loader.
var (
	FirstLoad = LoaderTiming{Initial: seconds(0.2), Text: seconds(0.6), Delay: seconds(0.3), Slide: seconds(0.8)}
	NextLoad  = LoaderTiming{Text: seconds(0.4), Delay: seconds(0.2), Slide: seconds(0.6)}
)

func init() {
	Register("page-transition", PageTransition)
}

// PageTransition shows the name over a full-screen overlay, then slides the
// overlay away and lets clicks through.
func PageTransition(c *Context) error {
	timing := NextLoad
	if c.Doc.Session(LoadedKey) == "" {
		timing = FirstLoad
	}
	c.Root.SetClass("is-done", false)

	tl := c.Timeline(motion.TimelineDefaults{Ease: motion.MustEase("power3.inOut")})
	if _, err := tl.FromTo(c.all(".loader-text"), motion.TweenVars{
		From:     motion.Props{"opacity": 0, "y": 30},
		To:       motion.Props{"opacity": 1, "y": 0},
		Duration: timing.Text,
		Delay:    timing.Initial,
	}, ""); err != nil {
		return err
	}
	if _, err := tl.FromTo(one(c.Root), motion.TweenVars{
		From:     motion.Props{"yPercent": 0},
		To:       motion.Props{"yPercent": -100},
		Duration: timing.Slide,
		Delay:    timing.Delay,
	}, "+="+formatSeconds(timing.Delay)); err != nil {
		return err
	}
	if err := tl.Call(func() {
		c.Root.SetClass("is-done", true)
		c.Doc.SetSession(LoadedKey, "1")
	}, ""); err != nil {
		return err
	}
	tl.Play()
	return nil
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}
