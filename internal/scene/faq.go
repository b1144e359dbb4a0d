package scene

import "strconv"

func init() {
	Register("faq", FAQ)
}

// Accordion keeps at most one item open.
type Accordion struct {
	open int
}

// NewAccordion returns an accordion with item open expanded; -1 starts closed.
func NewAccordion(open int) *Accordion { return &Accordion{open: open} }

// Open is the expanded item, or -1.
func (a *Accordion) Open() int { return a.open }

// Toggle expands i, or collapses it when it is already open.
func (a *Accordion) Toggle(i int) {
	if a.open == i {
		a.open = -1
		return
	}
	a.open = i
}

// FAQ reveals the questions and runs the accordion, first answer open.
func FAQ(c *Context) error {
	if err := c.enter(rise(".faq-header", 30, seconds(0.8), "top 80%")); err != nil {
		return err
	}
	items := rise(".faq-item", 20, seconds(0.5), "top 70%")
	items.stagger = seconds(0.1)
	if err := c.enter(items); err != nil {
		return err
	}

	faqs := c.Root.QueryAll(".faq-item")
	acc := NewAccordion(0)
	render := func() {
		for i, item := range faqs {
			open := i == acc.Open()
			item.SetClass("is-open", open)
			if q := item.Query(".faq-question"); q != nil {
				q.SetAttr("aria-expanded", strconv.FormatBool(open))
			}
		}
	}
	for i, item := range faqs {
		i := i
		c.listen(item.Query(".faq-question"), "click", func() {
			acc.Toggle(i)
			render()
		})
	}
	render()
	return nil
}
