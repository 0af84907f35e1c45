package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestNewConfig verifies the documented defaults. Changes to defaults must be intentional.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default Addr is :8080", func(t *testing.T) {
		t.Parallel()
		if cfg.Addr != ":8080" {
			t.Errorf("expected Addr to be ':8080', got '%s'", cfg.Addr)
		}
	})

	t.Run("default ScanDelay is 2.5 seconds", func(t *testing.T) {
		t.Parallel()
		if cfg.ScanDelay != 2500*time.Millisecond {
			t.Errorf("expected ScanDelay to be 2.5s, got %v", cfg.ScanDelay)
		}
	})

	t.Run("default ConfirmDelay is 3 seconds", func(t *testing.T) {
		t.Parallel()
		if cfg.ConfirmDelay != 3*time.Second {
			t.Errorf("expected ConfirmDelay to be 3s, got %v", cfg.ConfirmDelay)
		}
	})

	t.Run("shutdown timeout outlasts a scan", func(t *testing.T) {
		t.Parallel()
		if cfg.ShutdownTimeout <= cfg.ScanDelay {
			t.Errorf("expected ShutdownTimeout %v to exceed ScanDelay %v", cfg.ShutdownTimeout, cfg.ScanDelay)
		}
	})

	t.Run("inbox is disabled and lives in the XDG data dir", func(t *testing.T) {
		t.Parallel()
		if cfg.InboxEnabled {
			t.Error("expected InboxEnabled to be false")
		}
		if cfg.InboxDir != XDGDataDir() {
			t.Errorf("expected InboxDir %q, got %q", XDGDataDir(), cfg.InboxDir)
		}
	})

	t.Run("default BatchSize is 10", func(t *testing.T) {
		t.Parallel()
		if cfg.BatchSize != 10 {
			t.Errorf("expected BatchSize to be 10, got %d", cfg.BatchSize)
		}
	})

	t.Run("defaults are valid", func(t *testing.T) {
		t.Parallel()
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected defaults to validate, got %v", err)
		}
	})
}

// TestConfigValidate tests one validation rule per case.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(c *Config)
		want   error
	}{
		{name: "empty address returns ErrEmptyAddr", modify: func(c *Config) { c.Addr = "" }, want: ErrEmptyAddr},
		{name: "negative scan delay returns ErrInvalidScanDelay", modify: func(c *Config) { c.ScanDelay = -time.Second }, want: ErrInvalidScanDelay},
		{name: "zero scan delay is valid", modify: func(c *Config) { c.ScanDelay = 0 }, want: nil},
		{name: "zero confirm delay returns ErrInvalidConfirmDelay", modify: func(c *Config) { c.ConfirmDelay = 0 }, want: ErrInvalidConfirmDelay},
		{name: "zero shutdown timeout returns ErrInvalidShutdownTimeout", modify: func(c *Config) { c.ShutdownTimeout = 0 }, want: ErrInvalidShutdownTimeout},
		{name: "zero body limit returns ErrInvalidMaxBodyBytes", modify: func(c *Config) { c.MaxBodyBytes = 0 }, want: ErrInvalidMaxBodyBytes},
		{name: "zero batch size returns ErrInvalidBatchSize", modify: func(c *Config) { c.BatchSize = 0 }, want: ErrInvalidBatchSize},
		{name: "json and markdown together return ErrConflictingReportFormats", modify: func(c *Config) {
			c.JSONReport = true
			c.MarkdownReport = true
		}, want: ErrConflictingReportFormats},
		{name: "enabled inbox without a directory returns ErrEmptyInboxDir", modify: func(c *Config) {
			c.InboxEnabled = true
			c.InboxDir = ""
		}, want: ErrEmptyInboxDir},
		{name: "unknown log level returns ErrInvalidLogLevel", modify: func(c *Config) { c.LogLevel = "loud" }, want: ErrInvalidLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := NewConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestConfigValidateServer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(c *Config)
		want   error
	}{
		{name: "defaults are valid", modify: func(*Config) {}, want: nil},
		{name: "scan delay longer than the shutdown timeout is rejected", modify: func(c *Config) {
			c.ScanDelay = 30 * time.Second
		}, want: ErrShutdownBeforeScan},
		{name: "scan delay equal to the shutdown timeout is rejected", modify: func(c *Config) {
			c.ScanDelay = c.ShutdownTimeout
		}, want: ErrShutdownBeforeScan},
		{name: "longer shutdown timeout admits a slow scan", modify: func(c *Config) {
			c.ScanDelay = 30 * time.Second
			c.ShutdownTimeout = time.Minute
		}, want: nil},
		{name: "general rules are checked first", modify: func(c *Config) {
			c.Addr = ""
			c.ScanDelay = time.Hour
		}, want: ErrEmptyAddr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := NewConfig()
			tt.modify(cfg)

			err := cfg.ValidateServer()
			if tt.want == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}

	t.Run("one-shot scans are not bound by the shutdown timeout", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.ScanDelay = 30 * time.Second
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected Validate to accept a slow scan, got %v", err)
		}
	})
}

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()
		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("invalid YAML is reported with the path", func(t *testing.T) {
		t.Parallel()
		path := writeConfigFile(t, "server: [unclosed")
		_, err := LoadConfigFile(path)
		if err == nil || !strings.Contains(err.Error(), path) {
			t.Errorf("expected parse error mentioning %s, got %v", path, err)
		}
	})

	t.Run("all sections are parsed", func(t *testing.T) {
		t.Parallel()
		path := writeConfigFile(t, `
server:
  addr: "127.0.0.1:9000"
  shutdownTimeout: 20s
  logLevel: debug
  logJSON: true
  inbox: true
  inboxDir: /tmp/hks-inbox
  maxBodyBytes: 1024
scanner:
  delay: 500ms
  batchSize: 4
contact:
  confirmDelay: 1s
content:
  file: copy.json
`)
		file, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cfg := NewConfig()
		file.Apply(cfg)

		if cfg.Addr != "127.0.0.1:9000" {
			t.Errorf("Addr = %q", cfg.Addr)
		}
		if cfg.ShutdownTimeout != 20*time.Second {
			t.Errorf("ShutdownTimeout = %v", cfg.ShutdownTimeout)
		}
		if cfg.LogLevel != "debug" || !cfg.LogJSON {
			t.Errorf("LogLevel = %q, LogJSON = %v", cfg.LogLevel, cfg.LogJSON)
		}
		if !cfg.InboxEnabled || cfg.InboxDir != "/tmp/hks-inbox" {
			t.Errorf("InboxEnabled = %v, InboxDir = %q", cfg.InboxEnabled, cfg.InboxDir)
		}
		if cfg.MaxBodyBytes != 1024 {
			t.Errorf("MaxBodyBytes = %d", cfg.MaxBodyBytes)
		}
		if cfg.ScanDelay != 500*time.Millisecond || cfg.BatchSize != 4 {
			t.Errorf("ScanDelay = %v, BatchSize = %d", cfg.ScanDelay, cfg.BatchSize)
		}
		if cfg.ConfirmDelay != time.Second {
			t.Errorf("ConfirmDelay = %v", cfg.ConfirmDelay)
		}
		if cfg.ContentFile != "copy.json" {
			t.Errorf("ContentFile = %q", cfg.ContentFile)
		}
	})
}

func TestFileApply(t *testing.T) {
	t.Parallel()

	t.Run("empty file keeps every default", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		(&File{}).Apply(cfg)

		if *cfg != *NewConfig() {
			t.Errorf("expected defaults to be unchanged, got %+v", cfg)
		}
	})

	t.Run("explicit zero delay disables the wait", func(t *testing.T) {
		t.Parallel()
		zero := time.Duration(0)
		cfg := NewConfig()
		(&File{Scanner: ScannerSection{Delay: &zero}}).Apply(cfg)

		if cfg.ScanDelay != 0 {
			t.Errorf("expected ScanDelay 0, got %v", cfg.ScanDelay)
		}
	})

	t.Run("explicit false turns the inbox off", func(t *testing.T) {
		t.Parallel()
		off := false
		cfg := NewConfig()
		cfg.InboxEnabled = true
		(&File{Server: ServerSection{Inbox: &off}}).Apply(cfg)

		if cfg.InboxEnabled {
			t.Error("expected InboxEnabled to be false")
		}
	})
}

func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit existing path is returned", func(t *testing.T) {
		t.Parallel()
		path := writeConfigFile(t, "server: {}\n")
		if got := FindConfigFile(path); got != path {
			t.Errorf("expected %s, got %s", path, got)
		}
	})

	t.Run("explicit missing path returns empty", func(t *testing.T) {
		t.Parallel()
		if got := FindConfigFile(filepath.Join(t.TempDir(), "missing")); got != "" {
			t.Errorf("expected empty path, got %s", got)
		}
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("explicit missing file is an error", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.ConfigFilePath = filepath.Join(t.TempDir(), "missing.yaml")

		_, err := Load(cfg)
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("explicit file is applied", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.ConfigFilePath = writeConfigFile(t, "server:\n  addr: \":9999\"\n")

		path, err := Load(cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if path != cfg.ConfigFilePath {
			t.Errorf("expected loaded path %s, got %s", cfg.ConfigFilePath, path)
		}
		if cfg.Addr != ":9999" {
			t.Errorf("expected Addr :9999, got %s", cfg.Addr)
		}
	})
}

func TestXDGDirs(t *testing.T) {
	t.Parallel()

	for name, dir := range map[string]string{"data": XDGDataDir(), "config": XDGConfigDir()} {
		t.Run(name+" dir ends with the app name", func(t *testing.T) {
			t.Parallel()
			if filepath.Base(dir) != AppName {
				t.Errorf("expected %s dir to end with %s, got %s", name, AppName, dir)
			}
		})
	}
}
