package contact

import (
	"sync"
	"time"

	"github.com/hacksolana/hks/internal/clock"
	"github.com/hacksolana/hks/internal/model"
)

// ConfirmDelay is how long the confirmation stays visible before the form resets.
const ConfirmDelay = 3 * time.Second

// Form is the contact form state: three text fields and a confirmation flag.
//
// The state machine is idle -> confirmed -> idle. Submit moves to confirmed
// when every field is filled, and a timer moves back to idle, clearing the
// fields. Submitting again while confirmed restarts the cycle; the earlier
// timer still fires and resets the form.
type Form struct {
	mu        sync.Mutex
	fields    model.ContactMessage
	confirmed bool
	delay     time.Duration
	afterFunc clock.AfterFunc
	onSubmit  func(model.ContactMessage)
	onReset   func()
	timers    []clock.Timer
}

// FormOption configures a Form.
type FormOption func(*Form)

// WithConfirmDelay sets how long the confirmation is shown.
// Negative values are treated as zero.
func WithConfirmDelay(d time.Duration) FormOption {
	return func(f *Form) {
		if d < 0 {
			d = 0
		}
		f.delay = d
	}
}

// WithFormAfterFunc replaces the timer scheduler.
func WithFormAfterFunc(af clock.AfterFunc) FormOption {
	return func(f *Form) {
		if af != nil {
			f.afterFunc = af
		}
	}
}

// OnSubmit registers a hook run with the submitted values after a successful
// Submit. It runs outside the form lock.
func OnSubmit(fn func(model.ContactMessage)) FormOption {
	return func(f *Form) {
		f.onSubmit = fn
	}
}

// OnReset registers a hook run after the form has been cleared.
func OnReset(fn func()) FormOption {
	return func(f *Form) {
		f.onReset = fn
	}
}

// NewForm creates an empty, unconfirmed Form.
func NewForm(opts ...FormOption) *Form {
	f := &Form{
		delay:     ConfirmDelay,
		afterFunc: clock.Real,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SetName sets the name field.
func (f *Form) SetName(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields.Name = v
}

// SetEmail sets the e-mail field.
func (f *Form) SetEmail(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields.Email = v
}

// SetMessage sets the message field.
func (f *Form) SetMessage(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields.Message = v
}

// Fields returns the current field values.
func (f *Form) Fields() model.ContactMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// Confirmed reports whether the confirmation is visible.
func (f *Form) Confirmed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.confirmed
}

// Submit shows the confirmation and schedules the reset.
// If any field is empty nothing happens and Submit returns false.
func (f *Form) Submit() bool {
	f.mu.Lock()
	if !f.fields.Valid() {
		f.mu.Unlock()
		return false
	}

	f.confirmed = true
	submitted := f.fields
	f.timers = append(f.timers, f.afterFunc(f.delay, f.reset))
	onSubmit := f.onSubmit
	f.mu.Unlock()

	if onSubmit != nil {
		onSubmit(submitted)
	}
	return true
}

func (f *Form) reset() {
	f.mu.Lock()
	f.fields = model.ContactMessage{}
	f.confirmed = false
	onReset := f.onReset
	f.mu.Unlock()

	if onReset != nil {
		onReset()
	}
}

// Close stops pending reset timers. The fields and the confirmation stay as they are.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, t := range f.timers {
		t.Stop()
	}
	f.timers = nil
}
