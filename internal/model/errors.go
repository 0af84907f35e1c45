package model

import "errors"

var (
	// ErrUnknownEnumValue is returned when text does not name a known enum value.
	ErrUnknownEnumValue = errors.New("unknown enum value")

	// ErrEmptyName is returned when a contact message has no name.
	ErrEmptyName = errors.New("name is required")

	// ErrEmptyEmail is returned when a contact message has no e-mail address.
	ErrEmptyEmail = errors.New("email is required")

	// ErrEmptyMessage is returned when a contact message has no body.
	ErrEmptyMessage = errors.New("message is required")
)
