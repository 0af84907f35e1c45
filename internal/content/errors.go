package content

import "errors"

var (
	// ErrMissingSection is returned when a content file lacks a required list.
	ErrMissingSection = errors.New("content section is missing or empty")

	// ErrUnknownSection is returned by Section for a name that is not a list section.
	ErrUnknownSection = errors.New("unknown content section")

	// ErrInvalidJSON is returned when a content file is not valid JSON.
	ErrInvalidJSON = errors.New("content is not valid JSON")
)
