package scene

import (
	"errors"
	"strconv"

	"github.com/dhruvvakharia/portfolio/internal/contact"
)

func init() {
	Register("contact-form", ContactForm)
}

// ContactForm binds the page's form controls to a contact.Form. The form
// root gets data-status, field errors go to .field-error[data-for=<input>] and
// the banner to .form-status.
func ContactForm(c *Context) error {
	inputs := map[string]Element{}
	for _, name := range contact.FieldNames {
		if el := c.Root.Query(`[name="` + name + `"]`); el != nil {
			inputs[name] = el
		}
	}
	button := c.Root.Query(`[type="submit"]`)
	banner := c.Root.Query(".form-status")

	showErrors := func(fe contact.FieldErrors) {
		for _, el := range c.Root.QueryAll(".field-error") {
			el.SetText(fe[el.Attr("data-for")])
		}
		for name, el := range inputs {
			_, bad := fe[name]
			el.SetAttr("aria-invalid", strconv.FormatBool(bad))
		}
	}

	form := contact.New(c.Clock(), func(s contact.Status) {
		c.Root.SetAttr("data-status", s.String())
		if button != nil {
			busy := s == contact.Submitting
			button.SetAttr("aria-busy", strconv.FormatBool(busy))
			button.SetClass("is-loading", busy)
		}
		if banner != nil {
			banner.SetText(s.Message())
			banner.SetClass("is-visible", s.Message() != "")
		}
		if s == contact.Success {
			for _, el := range inputs {
				el.SetValue("")
			}
		}
	})
	c.Cleanup(form.Close)
	c.Root.SetAttr("data-status", form.Status().String())

	for name, el := range inputs {
		name, el := name, el
		c.listen(el, "input", func() {
			_ = form.Set(name, el.Value())
		})
	}
	c.listen(c.Root, "submit", func() {
		for name, el := range inputs {
			_ = form.Set(name, el.Value())
		}
		err := form.Submit()
		var fe contact.FieldErrors
		switch {
		case errors.As(err, &fe):
			showErrors(fe)
		case err == nil:
			showErrors(nil)
		}
	})
	return nil
}
