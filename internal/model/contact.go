package model

import "errors"

// ContactMessage is a submission of the contact form.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Validate returns nil when all fields are non-empty. Otherwise it returns
// the sentinel errors of every empty field joined together.
func (m ContactMessage) Validate() error {
	var errs []error
	if m.Name == "" {
		errs = append(errs, ErrEmptyName)
	}
	if m.Email == "" {
		errs = append(errs, ErrEmptyEmail)
	}
	if m.Message == "" {
		errs = append(errs, ErrEmptyMessage)
	}
	return errors.Join(errs...)
}

// Valid reports whether all fields are non-empty.
func (m ContactMessage) Valid() bool {
	return m.Validate() == nil
}

// MissingFields returns the JSON names of the empty fields in form order.
func (m ContactMessage) MissingFields() []string {
	var fields []string
	if m.Name == "" {
		fields = append(fields, "name")
	}
	if m.Email == "" {
		fields = append(fields, "email")
	}
	if m.Message == "" {
		fields = append(fields, "message")
	}
	return fields
}
