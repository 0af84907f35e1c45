package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	hkslog "github.com/hacksolana/hks/internal/log"
)

// Default configuration values.
const (
	// DefaultAddr is the listen address of the site.
	DefaultAddr = ":8080"

	// DefaultScanDelay is the artificial latency of a simulated scan.
	DefaultScanDelay = 2500 * time.Millisecond

	// DefaultConfirmDelay is how long the contact confirmation stays visible.
	DefaultConfirmDelay = 3 * time.Second

	// DefaultBatchSize is the number of concurrent scans run by "hks scan".
	DefaultBatchSize = 10

	// DefaultShutdownTimeout bounds graceful shutdown. ValidateServer
	// requires it to exceed the scan delay so that in-flight scans can finish.
	DefaultShutdownTimeout = 10 * time.Second

	// DefaultReadHeaderTimeout protects against slow-header clients.
	DefaultReadHeaderTimeout = 5 * time.Second

	// DefaultMaxBodyBytes caps API request bodies.
	DefaultMaxBodyBytes = 64 * 1024

	// DefaultLogLevel is the server log level when not verbose.
	DefaultLogLevel = "info"

	// AppName is the application name used for XDG directory paths.
	AppName = "hks"
)

// Config holds all configuration options for the HKS server and CLI.
// It is populated from defaults, then the config file, then CLI flags.
//
// Design decision: A single flat struct serves both "serve" and "scan";
// each command reads the fields it needs.
type Config struct {
	// Addr is the listen address in "host:port" form.
	Addr string

	// ScanDelay is the artificial latency of every simulated scan.
	ScanDelay time.Duration

	// ConfirmDelay is how long the contact confirmation is shown before the form resets.
	ConfirmDelay time.Duration

	// ContentFile overrides the embedded page copy. Empty means embedded.
	ContentFile string

	// InboxEnabled stores contact messages in the SQLite inbox.
	InboxEnabled bool

	// InboxDir is the directory holding hks.db. Defaults to the XDG data dir.
	InboxDir string

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration

	// ReadHeaderTimeout is passed to http.Server.
	ReadHeaderTimeout time.Duration

	// MaxBodyBytes caps API request bodies.
	MaxBodyBytes int64

	// LogJSON switches the server log to JSON.
	LogJSON bool

	// LogLevel is the server log level name (debug, info, warn, error).
	LogLevel string

	// Verbose forces debug logging.
	Verbose bool

	// NoBanner suppresses the ASCII banner printed by "serve".
	NoBanner bool

	// ConfigFilePath is an explicit config file path. If empty, .hks is
	// searched for in the current directory and then the home directory.
	ConfigFilePath string

	// BatchSize is the number of concurrent scans run by "hks scan".
	BatchSize int

	// JSONReport selects JSON output for "hks scan".
	JSONReport bool

	// MarkdownReport selects Markdown output for "hks scan".
	MarkdownReport bool

	// ReportFile writes the scan report to a file instead of stdout.
	ReportFile string

	// NoColor disables ANSI colours in the text report.
	NoColor bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Addr:              DefaultAddr,
		ScanDelay:         DefaultScanDelay,
		ConfirmDelay:      DefaultConfirmDelay,
		InboxDir:          XDGDataDir(),
		ShutdownTimeout:   DefaultShutdownTimeout,
		ReadHeaderTimeout: DefaultReadHeaderTimeout,
		MaxBodyBytes:      DefaultMaxBodyBytes,
		LogLevel:          DefaultLogLevel,
		BatchSize:         DefaultBatchSize,
	}
}

// XDGDataDir returns the XDG data directory for HKS.
// On Linux: ~/.local/share/hks
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for HKS.
// On Linux: ~/.config/hks
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid and returns the first problem found.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return ErrEmptyAddr
	}
	if c.ScanDelay < 0 {
		return ErrInvalidScanDelay
	}
	if c.ConfirmDelay <= 0 {
		return ErrInvalidConfirmDelay
	}
	if c.ShutdownTimeout <= 0 {
		return ErrInvalidShutdownTimeout
	}
	if c.MaxBodyBytes <= 0 {
		return ErrInvalidMaxBodyBytes
	}
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	if c.InboxEnabled && c.InboxDir == "" {
		return ErrEmptyInboxDir
	}
	if _, err := hkslog.ParseLevel(c.LogLevel); err != nil {
		return ErrInvalidLogLevel
	}
	return nil
}

// ValidateServer runs Validate and the checks that only matter to the
// long-running server.
func (c *Config) ValidateServer() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.ShutdownTimeout <= c.ScanDelay {
		return ErrShutdownBeforeScan
	}
	return nil
}
