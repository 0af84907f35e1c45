package config

import "errors"

// Configuration validation errors returned by Config.Validate.
var (
	// ErrEmptyAddr is returned when no listen address is configured.
	ErrEmptyAddr = errors.New("invalid address: must not be empty")

	// ErrInvalidScanDelay is returned when the scan delay is negative.
	ErrInvalidScanDelay = errors.New("invalid scan delay: must be non-negative")

	// ErrInvalidConfirmDelay is returned when the confirmation delay is not positive.
	ErrInvalidConfirmDelay = errors.New("invalid confirm delay: must be positive")

	// ErrInvalidShutdownTimeout is returned when the shutdown timeout is not positive.
	ErrInvalidShutdownTimeout = errors.New("invalid shutdown timeout: must be positive")

	// ErrShutdownBeforeScan is returned when the shutdown timeout would cut off
	// a scan that is still waiting for its delay.
	ErrShutdownBeforeScan = errors.New("invalid shutdown timeout: must exceed the scan delay")

	// ErrInvalidMaxBodyBytes is returned when the body limit is not positive.
	ErrInvalidMaxBodyBytes = errors.New("invalid max body size: must be positive")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown are set.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrEmptyInboxDir is returned when the inbox is enabled without a directory.
	ErrEmptyInboxDir = errors.New("invalid inbox directory: must not be empty when the inbox is enabled")

	// ErrInvalidLogLevel is returned for an unknown log level name.
	ErrInvalidLogLevel = errors.New("invalid log level: use debug, info, warn or error")
)
