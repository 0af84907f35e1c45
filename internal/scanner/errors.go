package scanner

import "errors"

// ErrEmptyAddress is returned when the address is empty after trimming
// whitespace. Callers that mirror the site treat it as a silent no-op.
var ErrEmptyAddress = errors.New("address is required")
