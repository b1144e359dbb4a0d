package scene

import "strconv"

// ScrolledAfter is the scroll offset past which the bar turns solid.
const ScrolledAfter = 300

func init() {
	Register("nav", Nav)
}

// Nav toggles the solid bar on scroll and runs the mobile menu. An open menu
// locks page scroll; the menu closes when the scope unmounts, which includes
// every route change.
func Nav(c *Context) error {
	update := func() {
		c.Root.SetClass("is-scrolled", c.Doc.ScrollY() > ScrolledAfter)
	}
	c.Cleanup(c.Doc.OnScroll(update))
	update()

	toggle := c.Root.Query(".nav-toggle")
	menu := c.Root.Query(".mobile-menu")
	if toggle == nil || menu == nil {
		return nil
	}
	body := c.Doc.Body()
	open := false
	set := func(on bool) {
		open = on
		menu.SetClass("is-open", on)
		toggle.SetClass("is-open", on)
		toggle.SetAttr("aria-expanded", strconv.FormatBool(on))
		if body == nil {
			return
		}
		if on {
			body.Set("overflow", "hidden")
		} else {
			body.Clear("overflow")
		}
	}
	c.listen(toggle, "click", func() { set(!open) })
	for _, link := range menu.QueryAll("a") {
		c.listen(link, "click", func() { set(false) })
	}
	c.Cleanup(func() { set(false) })
	set(false)
	return nil
}
