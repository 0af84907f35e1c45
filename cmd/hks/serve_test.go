package main

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tidwall/gjson"

	"github.com/hacksolana/hks/internal/config"
	"github.com/hacksolana/hks/internal/database"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBuildServeConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults without flags", func(t *testing.T) {
		t.Parallel()
		cmd := NewServeCmd()
		if err := cmd.ParseFlags(nil); err != nil {
			t.Fatal(err)
		}

		cfg, err := buildServeConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.ScanDelay != config.DefaultScanDelay || cfg.ConfirmDelay != config.DefaultConfirmDelay {
			t.Errorf("unexpected delays: scan=%v confirm=%v", cfg.ScanDelay, cfg.ConfirmDelay)
		}
	})

	t.Run("flags override defaults", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		cmd := NewServeCmd()
		err := cmd.ParseFlags([]string{
			"--addr", "127.0.0.1:9999",
			"--scan-delay", "100ms",
			"--confirm-delay", "1s",
			"--inbox",
			"--inbox-dir", dir,
			"--log-json",
			"--log-level", "warn",
			"--no-banner",
		})
		if err != nil {
			t.Fatal(err)
		}

		cfg, err := buildServeConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Addr != "127.0.0.1:9999" {
			t.Errorf("Addr = %q", cfg.Addr)
		}
		if cfg.ScanDelay != 100*time.Millisecond || cfg.ConfirmDelay != time.Second {
			t.Errorf("unexpected delays: scan=%v confirm=%v", cfg.ScanDelay, cfg.ConfirmDelay)
		}
		if !cfg.InboxEnabled || cfg.InboxDir != dir {
			t.Errorf("InboxEnabled=%v InboxDir=%q", cfg.InboxEnabled, cfg.InboxDir)
		}
		if !cfg.LogJSON || cfg.LogLevel != "warn" || !cfg.NoBanner {
			t.Errorf("LogJSON=%v LogLevel=%q NoBanner=%v", cfg.LogJSON, cfg.LogLevel, cfg.NoBanner)
		}
	})
}

func TestNewServerLogger(t *testing.T) {
	t.Parallel()

	t.Run("unknown level is an error", func(t *testing.T) {
		t.Parallel()
		cfg := config.NewConfig()
		cfg.LogLevel = "chatty"
		if _, err := newServerLogger(io.Discard, cfg); err == nil {
			t.Error("expected an error")
		}
	})

	t.Run("verbose enables debug", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		cfg := config.NewConfig()
		cfg.LogLevel = "error"
		cfg.Verbose = true

		logger, err := newServerLogger(&buf, cfg)
		if err != nil {
			t.Fatal(err)
		}
		logger.Debug("probe")
		if !strings.Contains(buf.String(), "probe") {
			t.Error("expected debug output")
		}
	})

	t.Run("json output masks e-mail addresses", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		cfg := config.NewConfig()
		cfg.LogJSON = true

		logger, err := newServerLogger(&buf, cfg)
		if err != nil {
			t.Fatal(err)
		}
		logger.Info("contact", "email", "ada@example.com")
		if !gjson.Valid(buf.String()) {
			t.Fatalf("expected JSON, got %q", buf.String())
		}
		if strings.Contains(buf.String(), "ada@example.com") {
			t.Error("expected the e-mail address to be masked")
		}
	})
}

func TestNewServer(t *testing.T) {
	t.Parallel()

	t.Run("contact messages reach the inbox", func(t *testing.T) {
		t.Parallel()
		cfg := config.NewConfig()
		cfg.InboxEnabled = true
		cfg.InboxDir = t.TempDir()

		srv, cleanup, err := newServer(cfg, discardLogger())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		req := httptest.NewRequest(http.MethodPost, "/api/contact",
			strings.NewReader(`{"name":"Ada","email":"ada@example.com","message":"hello"}`))
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)
		if rec.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d: %s", rec.Code, rec.Body.String())
		}

		ready := httptest.NewRecorder()
		srv.Handler().ServeHTTP(ready, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		if ready.Code != http.StatusOK {
			t.Errorf("expected ready inbox, got %d", ready.Code)
		}
		cleanup()

		inbox, err := database.Open(cfg.InboxDir, database.ReadOnlyOptions())
		if err != nil {
			t.Fatalf("failed to reopen inbox: %v", err)
		}
		defer inbox.Close()
		count, err := inbox.CountContactMessages(t.Context())
		if err != nil {
			t.Fatal(err)
		}
		if count != 1 {
			t.Errorf("expected 1 stored message, got %d", count)
		}
	})

	t.Run("missing content file is an error", func(t *testing.T) {
		t.Parallel()
		cfg := config.NewConfig()
		cfg.ContentFile = t.TempDir() + "/missing.json"

		if _, _, err := newServer(cfg, discardLogger()); err == nil {
			t.Error("expected an error")
		}
	})
}

func TestPrintBanner(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printBanner(&buf, ":8080")
	if !strings.Contains(buf.String(), "listening on :8080") {
		t.Errorf("expected the address in the banner, got %q", buf.String())
	}
}
