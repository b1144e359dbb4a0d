package scene

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dhruvvakharia/portfolio/internal/contact"
)

func contactFormNode() *node {
	return el("form", "",
		el("input", "").with("name", "name"),
		el("input", "").with("name", "email"),
		el("span", "field-error").with("data-for", "email"),
		el("input", "").with("name", "subject"),
		el("textarea", "").with("name", "message"),
		el("button", "").with("type", "submit"),
		el("p", "form-status"),
	).with(Attr, "contact-form")
}

func fill(form *node, values map[string]string) {
	for name, v := range values {
		form.child(`[name="` + name + `"]`).typeValue(v)
	}
}

func TestContactFormSubmission(t *testing.T) {
	form := contactFormNode()
	_, clock := mount(t, newPage("/contact", form))
	email := form.child(`[name="email"]`)
	button := form.child(`[type="submit"]`)
	banner := form.child(".form-status")

	assert.Equal(t, "idle", form.Attr("data-status"))

	fill(form, map[string]string{"name": "Ada", "email": "nope", "subject": "Hi", "message": "Hello"})
	form.fire("submit")
	assert.Equal(t, "idle", form.Attr("data-status"))
	assert.Equal(t, "must be an email address", form.child(".field-error").text)
	assert.Equal(t, "true", email.Attr("aria-invalid"))

	email.typeValue("ada@example.com")
	form.fire("submit")
	assert.Equal(t, "submitting", form.Attr("data-status"))
	assert.Equal(t, "true", button.Attr("aria-busy"))
	assert.Empty(t, form.child(".field-error").text)
	assert.Equal(t, "false", email.Attr("aria-invalid"))

	clock.Advance(contact.SubmitDelay)
	assert.Equal(t, "success", form.Attr("data-status"))
	assert.Equal(t, "false", button.Attr("aria-busy"))
	assert.Equal(t, contact.Success.Message(), banner.text)
	assert.True(t, banner.HasClass("is-visible"))
	for _, name := range contact.FieldNames {
		assert.Empty(t, form.child(`[name="`+name+`"]`).value, name)
	}

	clock.Advance(contact.ResetDelay)
	assert.Equal(t, "idle", form.Attr("data-status"))
	assert.False(t, banner.HasClass("is-visible"))
}

func TestContactFormUnmountCancelsSubmission(t *testing.T) {
	form := contactFormNode()
	pg, clock := mount(t, newPage("/contact", form))
	fill(form, map[string]string{"name": "Ada", "email": "ada@example.com", "subject": "Hi", "message": "Hello"})
	form.fire("submit")
	pg.Unmount()

	clock.Advance(10 * time.Second)
	assert.Equal(t, "submitting", form.Attr("data-status"))
	assert.Equal(t, "Ada", form.child(`[name="name"]`).value)
	assert.Zero(t, clock.Pending())
}
