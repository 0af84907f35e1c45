package config

import "time"

// File represents the structure of the .hks configuration file.
// Every field is optional; unset fields keep the value already in Config.
type File struct {
	Server  ServerSection  `yaml:"server,omitempty"`
	Scanner ScannerSection `yaml:"scanner,omitempty"`
	Contact ContactSection `yaml:"contact,omitempty"`
	Content ContentSection `yaml:"content,omitempty"`
}

// ServerSection configures "hks serve".
type ServerSection struct {
	Addr            string        `yaml:"addr,omitempty"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout,omitempty"`
	LogLevel        string        `yaml:"logLevel,omitempty"`
	LogJSON         *bool         `yaml:"logJSON,omitempty"`
	Inbox           *bool         `yaml:"inbox,omitempty"`
	InboxDir        string        `yaml:"inboxDir,omitempty"`
	MaxBodyBytes    int64         `yaml:"maxBodyBytes,omitempty"`
}

// ScannerSection configures the simulated scanner.
type ScannerSection struct {
	Delay     *time.Duration `yaml:"delay,omitempty"`
	BatchSize int            `yaml:"batchSize,omitempty"`
}

// ContactSection configures the contact form.
type ContactSection struct {
	ConfirmDelay time.Duration `yaml:"confirmDelay,omitempty"`
}

// ContentSection configures the page copy.
type ContentSection struct {
	File string `yaml:"file,omitempty"`
}

// Apply copies every set field of the file into cfg.
func (f *File) Apply(cfg *Config) {
	s := f.Server
	if s.Addr != "" {
		cfg.Addr = s.Addr
	}
	if s.ShutdownTimeout != 0 {
		cfg.ShutdownTimeout = s.ShutdownTimeout
	}
	if s.LogLevel != "" {
		cfg.LogLevel = s.LogLevel
	}
	if s.LogJSON != nil {
		cfg.LogJSON = *s.LogJSON
	}
	if s.Inbox != nil {
		cfg.InboxEnabled = *s.Inbox
	}
	if s.InboxDir != "" {
		cfg.InboxDir = s.InboxDir
	}
	if s.MaxBodyBytes != 0 {
		cfg.MaxBodyBytes = s.MaxBodyBytes
	}

	// Delay is a pointer so that an explicit 0s disables the wait.
	if f.Scanner.Delay != nil {
		cfg.ScanDelay = *f.Scanner.Delay
	}
	if f.Scanner.BatchSize != 0 {
		cfg.BatchSize = f.Scanner.BatchSize
	}
	if f.Contact.ConfirmDelay != 0 {
		cfg.ConfirmDelay = f.Contact.ConfirmDelay
	}
	if f.Content.File != "" {
		cfg.ContentFile = f.Content.File
	}
}
