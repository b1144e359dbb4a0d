// Package contact is the contact page form. Submission is simulated: the
// form waits, reports success, clears itself and returns to idle. No request
// leaves the browser.
package contact

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/dhruvvakharia/portfolio/internal/motion"
)

// Status of the form.
type Status int

const (
	Idle Status = iota
	Submitting
	Success
	// Error is a valid status for rendering but the simulated submission
	// never produces it.
	Error
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Success:
		return "success"
	case Error:
		return "error"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Message is the banner text shown for s, empty when there is none.
func (s Status) Message() string {
	switch s {
	case Success:
		return "Thanks for reaching out! I'll get back to you soon."
	case Error:
		return "Something went wrong. Please try again."
	}
	return ""
}

// Timing of the simulated submission.
const (
	SubmitDelay = 1500 * time.Millisecond
	ResetDelay  = 5 * time.Second
)

// Fields are the form inputs.
type Fields struct {
	Name    string `form:"name" validate:"required"`
	Email   string `form:"email" validate:"required,email"`
	Subject string `form:"subject" validate:"required"`
	Message string `form:"message" validate:"required"`
}

// FieldNames lists the inputs in form order.
var FieldNames = []string{"name", "email", "subject", "message"}

// ErrBusy is returned by Submit while a submission is in flight.
var ErrBusy = errors.New("contact: submission in progress")

// FieldErrors maps an input name to what is wrong with it.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	names := make([]string, 0, len(fe))
	for n := range fe {
		names = append(names, n)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = n + ": " + fe[n]
	}
	return "contact: invalid " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("form")
	})
	return v
}

// Validate checks every field is present and the email looks like an address.
func (f Fields) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := FieldErrors{}
	for _, e := range verrs {
		switch e.Tag() {
		case "required":
			out[e.Field()] = "is required"
		case "email":
			out[e.Field()] = "must be an email address"
		default:
			out[e.Field()] = "is invalid"
		}
	}
	return out
}

// Form owns the field values and submission status of one contact page.
type Form struct {
	clock    motion.Clock
	onChange func(Status)

	fields Fields
	status Status
	submit motion.Timer
	reset  motion.Timer
	closed bool
}

// New returns an idle, empty form. onChange, if set, runs after every status
// change.
func New(clock motion.Clock, onChange func(Status)) *Form {
	return &Form{clock: clock, onChange: onChange}
}

// Status is the current status.
func (f *Form) Status() Status { return f.status }

// Fields returns the current values.
func (f *Form) Fields() Fields { return f.fields }

// Set updates one input by name.
func (f *Form) Set(name, value string) error {
	switch name {
	case "name":
		f.fields.Name = value
	case "email":
		f.fields.Email = value
	case "subject":
		f.fields.Subject = value
	case "message":
		f.fields.Message = value
	default:
		return fmt.Errorf("contact: unknown field %q", name)
	}
	return nil
}

// Submit validates the fields and starts the simulated submission. A new
// submission from the success state cancels the pending reset.
func (f *Form) Submit() error {
	if f.closed {
		return nil
	}
	if f.status == Submitting {
		return ErrBusy
	}
	if err := f.fields.Validate(); err != nil {
		return err
	}
	f.stopTimers()
	f.setStatus(Submitting)
	f.submit = f.clock.AfterFunc(SubmitDelay, f.complete)
	return nil
}

func (f *Form) complete() {
	f.submit = nil
	if f.closed {
		return
	}
	f.fields = Fields{}
	f.setStatus(Success)
	f.reset = f.clock.AfterFunc(ResetDelay, func() {
		f.reset = nil
		if !f.closed {
			f.setStatus(Idle)
		}
	})
}

func (f *Form) setStatus(s Status) {
	f.status = s
	if f.onChange != nil {
		f.onChange(s)
	}
}

func (f *Form) stopTimers() {
	for _, t := range []*motion.Timer{&f.submit, &f.reset} {
		if *t != nil {
			(*t).Stop()
			*t = nil
		}
	}
}

// Close cancels pending timers. The form does nothing afterwards.
func (f *Form) Close() {
	f.closed = true
	f.stopTimers()
}
