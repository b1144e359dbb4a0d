package scene

import (
	"strconv"

	"github.com/dhruvvakharia/portfolio/internal/motion"
)

func init() {
	Register("testimonials", Testimonials)
}

// Testimonials rotates the quote slides and wires the arrows and dots.
func Testimonials(c *Context) error {
	if err := c.enter(rise(".testimonials-header", 30, seconds(0.8), "top 80%")); err != nil {
		return err
	}
	if err := c.enter(entrance{
		selector: ".testimonial-card",
		from:     motion.Props{"opacity": 0, "scale": 0.95},
		to:       motion.Props{"opacity": 1, "scale": 1},
		duration: seconds(0.6),
		start:    "top 70%",
	}); err != nil {
		return err
	}

	slides := c.Root.QueryAll(".testimonial-slide")
	if len(slides) == 0 {
		return nil
	}
	dots := c.Root.QueryAll(".testimonial-dot")
	counter := c.Root.Query(".testimonial-count")
	show := func(index int) {
		for i, s := range slides {
			s.SetClass("is-active", i == index)
			s.SetAttr("aria-hidden", strconv.FormatBool(i != index))
		}
		for i, d := range dots {
			d.SetClass("is-active", i == index)
			d.SetAttr("aria-current", strconv.FormatBool(i == index))
		}
		if counter != nil {
			counter.SetText(strconv.Itoa(index+1) + " / " + strconv.Itoa(len(slides)))
		}
	}

	carousel, err := motion.NewCarousel(motion.CarouselConfig{
		Items:    len(slides),
		Interval: motion.CarouselInterval,
		Cooldown: motion.CarouselCooldown,
		Clock:    c.Clock(),
		OnChange: show,
	})
	if err != nil {
		return err
	}
	c.Add(carousel)
	show(0)

	c.listen(c.Root.Query(`[data-action="prev"]`), "click", carousel.Prev)
	c.listen(c.Root.Query(`[data-action="next"]`), "click", carousel.Next)
	for i, d := range dots {
		i := i
		c.listen(d, "click", func() { carousel.Jump(i) })
	}
	carousel.Start()
	return nil
}
