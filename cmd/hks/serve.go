package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hacksolana/hks/internal/config"
	"github.com/hacksolana/hks/internal/contact"
	"github.com/hacksolana/hks/internal/content"
	"github.com/hacksolana/hks/internal/database"
	hkslog "github.com/hacksolana/hks/internal/log"
	"github.com/hacksolana/hks/internal/metrics"
	"github.com/hacksolana/hks/internal/scanner"
	"github.com/hacksolana/hks/internal/server"
	"github.com/hacksolana/hks/internal/site"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HKS site",
		Long: `Serve starts the HTTP server for the HKS single-page site.

Routes:
  GET  /                 the page
  GET  /static/...       scripts and styles
  GET  /data.json        page copy (?section=roadmap for one list)
  POST /api/scan         simulated token risk scan ({"address": "..."})
  POST /api/contact      contact form ({"name", "email", "message"})
  GET  /healthz /readyz  probes
  GET  /metrics          Prometheus metrics

Contact messages are only logged unless --inbox is set, in which case they
are also stored in a local SQLite database. Scan results are never stored.

Examples:
  # Serve on the default address
  hks serve

  # Serve on port 3000 with a faster scanner
  hks serve --addr :3000 --scan-delay 500ms

  # Keep contact messages in the default inbox
  hks serve --inbox`,
		Args: cobra.NoArgs,
		RunE: runServeCmd,
	}

	cmd.Flags().StringP("addr", "a", config.DefaultAddr, "Listen address")
	cmd.Flags().Duration("scan-delay", config.DefaultScanDelay, "Artificial latency of each simulated scan")
	cmd.Flags().Duration("confirm-delay", config.DefaultConfirmDelay, "How long the contact confirmation is shown")
	cmd.Flags().String("content", "", "JSON file overriding the embedded page copy")
	cmd.Flags().Bool("inbox", false, "Store contact messages in the local inbox")
	cmd.Flags().String("inbox-dir", config.XDGDataDir(), "Directory of the inbox database")
	cmd.Flags().Bool("log-json", false, "Write logs as JSON")
	cmd.Flags().String("log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	cmd.Flags().Bool("no-banner", false, "Do not print the startup banner")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .hks in current or home directory)")

	return cmd
}

// runServeCmd executes the serve command.
func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildServeConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.ValidateServer(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger, err := newServerLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if !cfg.NoBanner {
		printBanner(cmd.OutOrStdout(), cfg.Addr)
	}
	return runServe(ctx, cfg, logger)
}

// buildServeConfig layers defaults, the config file and explicitly set flags.
func buildServeConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if _, err := config.Load(cfg); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("addr") {
		if cfg.Addr, err = flags.GetString("addr"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("scan-delay") {
		if cfg.ScanDelay, err = flags.GetDuration("scan-delay"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("confirm-delay") {
		if cfg.ConfirmDelay, err = flags.GetDuration("confirm-delay"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("content") {
		if cfg.ContentFile, err = flags.GetString("content"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("inbox") {
		if cfg.InboxEnabled, err = flags.GetBool("inbox"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("inbox-dir") {
		if cfg.InboxDir, err = flags.GetString("inbox-dir"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("log-json") {
		if cfg.LogJSON, err = flags.GetBool("log-json"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("log-level") {
		if cfg.LogLevel, err = flags.GetString("log-level"); err != nil {
			return nil, err
		}
	}
	if cfg.NoBanner, err = flags.GetBool("no-banner"); err != nil {
		return nil, err
	}
	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// newServerLogger creates the secure server logger. --verbose wins over the log level.
func newServerLogger(w io.Writer, cfg *config.Config) (*slog.Logger, error) {
	level := hkslog.ServerLevel(cfg.Verbose)
	if !cfg.Verbose {
		parsed, err := hkslog.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		level = parsed
	}
	return hkslog.New(w, hkslog.Options{Level: level, JSON: cfg.LogJSON}), nil
}

// newServer wires the site components described by cfg.
// The returned cleanup function closes the inbox, if any.
func newServer(cfg *config.Config, logger *slog.Logger) (*server.Server, func(), error) {
	copyText, err := content.Load(cfg.ContentFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load content: %w", err)
	}

	m := metrics.New()
	contactOpts := []contact.ServiceOption{
		contact.WithMetrics(m),
		contact.WithLogger(logger),
	}

	cleanup := func() {}
	var ready func(context.Context) error
	if cfg.InboxEnabled {
		inbox, err := database.Open(cfg.InboxDir, database.DefaultOptions())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open inbox: %w", err)
		}
		logger.Info("contact inbox opened", "path", inbox.Path())

		contactOpts = append(contactOpts, contact.WithInbox(inbox))
		ready = inbox.Ping
		cleanup = func() {
			if err := inbox.Close(); err != nil {
				logger.Error("failed to close inbox", "error", err)
			}
		}
	}

	renderer, err := site.NewRenderer(copyText, site.WithConfirmDelay(cfg.ConfirmDelay))
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	srv, err := server.New(server.Options{
		Addr:              cfg.Addr,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ShutdownTimeout:   cfg.ShutdownTimeout,
		MaxBodyBytes:      cfg.MaxBodyBytes,
		ConfirmDelay:      cfg.ConfirmDelay,
		Simulator: scanner.NewSimulator(
			scanner.WithDelay(cfg.ScanDelay),
			scanner.WithLogger(logger),
		),
		Contact:  contact.NewService(contactOpts...),
		Content:  copyText,
		Renderer: renderer,
		Metrics:  m,
		Logger:   logger,
		Ready:    ready,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return srv, cleanup, nil
}

// runServe serves until ctx is cancelled.
func runServe(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	srv, cleanup, err := newServer(cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	logger.Info("starting hks",
		"addr", cfg.Addr,
		"scanDelay", cfg.ScanDelay,
		"inbox", cfg.InboxEnabled,
	)
	return srv.Run(ctx)
}
