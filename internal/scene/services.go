package scene

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/dhruvvakharia/portfolio/internal/motion"
)

// The services trigger waits for earlier pins to settle before measuring.
const servicesSettle = 100 * time.Millisecond

func init() {
	Register("services", Services)
}

// Services pins the services panel and steps through one service per
// motion.PanelDistance pixels of scroll. Tabs jump to a service directly.
func Services(c *Context) error {
	pin := c.Root.Query(".services-pin")
	panels := c.Root.QueryAll(".service-panel")
	if pin == nil || len(panels) == 0 {
		return nil
	}
	tabs := c.Root.QueryAll(".service-tab")

	show := func(index int, dir motion.Direction) {
		for i, p := range panels {
			active := i == index
			p.SetClass("is-active", active)
			p.SetClass("slide-down", active && dir == motion.Forward)
			p.SetClass("slide-up", active && dir == motion.Backward)
		}
		for i, t := range tabs {
			t.SetClass("is-active", i == index)
			t.SetAttr("aria-selected", strconv.FormatBool(i == index))
		}
	}

	stepper, err := motion.NewStepper(motion.StepperConfig{
		Panels:   len(panels),
		Cooldown: motion.PanelCooldown,
		Clock:    c.Clock(),
		OnChange: show,
		ScrollTo: c.Engine().Scroller.ScrollTo,
	})
	if err != nil {
		return err
	}
	c.Add(stepper)
	show(0, 0)

	for i, t := range tabs {
		i := i
		c.listen(t, "click", func() { stepper.Select(i) })
	}

	c.After(servicesSettle, func() {
		c.Engine().Scroller.Refresh()
		tr, err := c.Trigger(motion.TriggerVars{
			Trigger: pin,
			Start:   "top top",
			End:     fmt.Sprintf("+=%g", motion.Distance(len(panels))),
			Pin:     pin,
			OnUpdate: func(t *motion.Trigger) {
				stepper.SetRange(t.Start(), t.End())
				stepper.Update(t.Progress())
			},
		})
		if err != nil {
			log.Printf("scene services: %v", err)
			return
		}
		stepper.SetRange(tr.Start(), tr.End())

		header := rise(".services-header-content", 20, seconds(0.6), "top 10%")
		header.actions = "play none none reverse"
		if err := c.enter(header); err != nil {
			log.Printf("scene services: %v", err)
		}
	})
	return nil
}
