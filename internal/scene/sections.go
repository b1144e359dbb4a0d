package scene

import (
	"strconv"

	"github.com/dhruvvakharia/portfolio/internal/motion"
)

func init() {
	Register("process", Process)
	Register("work", Work)
	Register("project-card", ProjectCard)
	Register("page-header", PageHeader)
	Register("project-detail", ProjectDetail)
	Register("contact-page", ContactPage)
}

// Process reveals the header, then the step cards one after another.
func Process(c *Context) error {
	if err := c.enter(rise(".process-header", 30, seconds(0.8), "top 80%")); err != nil {
		return err
	}
	cards := rise(".process-card", 40, seconds(0.6), "top 70%")
	cards.stagger = seconds(0.15)
	return c.enter(cards)
}

func Work(c *Context) error {
	return c.enter(rise(".work-header", 30, seconds(0.8), "top 80%"))
}

// ProjectCard fades a card up as it scrolls in. Cards further along the grid,
// per data-index, start a little later.
func ProjectCard(c *Context) error {
	index, _ := strconv.Atoi(c.Root.Attr("data-index"))
	_, err := c.FromTo(one(c.Root), motion.TweenVars{
		From:     motion.Props{"opacity": 0, "y": 50},
		To:       motion.Props{"opacity": 1, "y": 0},
		Duration: seconds(0.6),
		Delay:    seconds(float64(index) * 0.1),
		ScrollTrigger: &motion.TriggerVars{
			Trigger: c.Root,
			Start:   "top 85%",
		},
	})
	return err
}

// PageHeader plays the listing page title on load.
func PageHeader(c *Context) error {
	_, err := c.FromTo(one(c.Root), motion.TweenVars{
		From:     motion.Props{"opacity": 0, "y": 30},
		To:       motion.Props{"opacity": 1, "y": 0},
		Duration: seconds(0.8),
	})
	return err
}

func ProjectDetail(c *Context) error {
	e := rise(".project-content", 30, seconds(0.8), "")
	e.stagger = seconds(0.1)
	return c.play(e)
}

func ContactPage(c *Context) error {
	e := rise(".contact-content", 30, seconds(0.8), "")
	e.stagger = seconds(0.1)
	return c.play(e)
}
