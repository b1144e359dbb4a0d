package scene

import (
	"github.com/dhruvvakharia/portfolio/internal/motion"
)

func init() {
	Register("hero", Hero)
}

// Hero plays the landing timeline: name, subtitle, portrait and tagline, each
// overlapping the previous step by half a second.
func Hero(c *Context) error {
	tl := c.Timeline(motion.TimelineDefaults{Ease: motion.MustEase("power3.out")})
	steps := []struct {
		selector string
		from, to motion.Props
		duration float64
		position string
	}{
		{".hero-name", motion.Props{"opacity": 0, "y": 50}, motion.Props{"opacity": 1, "y": 0}, 1.2, ""},
		{".hero-subtitle", motion.Props{"opacity": 0, "x": -100}, motion.Props{"opacity": 1, "x": 0}, 1, "-=0.5"},
		{".hero-image", motion.Props{"opacity": 0, "scale": 30}, motion.Props{"opacity": 1, "scale": 1}, 1.5, "-=0.5"},
		{".hero-tagline", motion.Props{"opacity": 0, "y": 30}, motion.Props{"opacity": 1, "y": 0}, 1, "-=0.5"},
	}
	for _, st := range steps {
		vars := motion.TweenVars{From: st.from, To: st.to, Duration: seconds(st.duration)}
		if _, err := tl.FromTo(c.all(st.selector), vars, st.position); err != nil {
			return err
		}
	}
	tl.Play()
	return nil
}
