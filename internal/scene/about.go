package scene

import (
	"time"

	"github.com/dhruvvakharia/portfolio/internal/motion"
)

// Pinned range of the about section, as a share of the viewport height.
const aboutPin = "+=150%"

func init() {
	Register("about", About)
}

// About pins the section for a viewport and a half while the statement
// lights up word by word.
func About(c *Context) error {
	content := c.Root.Query(".about-content")
	if content == nil {
		return nil
	}
	if _, err := c.Trigger(motion.TriggerVars{
		Trigger: c.Root,
		Start:   "top top",
		End:     aboutPin,
		Pin:     content,
	}); err != nil {
		return err
	}

	words := c.Root.QueryAll(".word")
	if len(words) > 0 {
		reveal := motion.NewWordReveal(len(words))
		vars := reveal.Vars(&motion.TriggerVars{
			Trigger:        c.Root,
			Start:          "top top",
			End:            aboutPin,
			Scrub:          true,
			ScrubSmoothing: time.Second,
		})
		if _, err := c.FromTo(targets(words), vars); err != nil {
			return err
		}
	}

	return c.enter(rise(".about-label", 20, seconds(0.8), "top 80%"))
}
