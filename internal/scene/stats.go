package scene

import (
	"strconv"

	"github.com/dhruvvakharia/portfolio/internal/content"
	"github.com/dhruvvakharia/portfolio/internal/motion"
)

func init() {
	Register("stats", Stats)
}

// Stats counts every .stat-value up from zero the first time the section
// reaches 80% of the viewport. Targets come from data-target and the suffix
// from data-suffix.
func Stats(c *Context) error {
	values := c.Root.QueryAll(".stat-value")
	stats := make([]content.Stat, len(values))
	goals := make([]int, len(values))
	for i, el := range values {
		n, err := strconv.Atoi(el.Attr("data-target"))
		if err != nil {
			return err
		}
		stats[i] = content.Stat{Value: n, Suffix: el.Attr("data-suffix")}
		goals[i] = n
		el.SetText(stats[i].Format(0))
	}

	counts := motion.NewCountUp(c.Engine(), goals, func(i, v int) {
		values[i].SetText(stats[i].Format(v))
	})
	c.Add(counts)
	if _, err := c.Trigger(motion.TriggerVars{
		Trigger: c.Root,
		Start:   "top 80%",
		OnEnter: func(*motion.Trigger) { counts.Fire() },
	}); err != nil {
		return err
	}

	if err := c.enter(rise(".stats-header", 30, seconds(0.8), "top 80%")); err != nil {
		return err
	}
	items := rise(".stat-item", 40, seconds(0.6), "top 70%")
	items.stagger = seconds(0.15)
	return c.enter(items)
}
