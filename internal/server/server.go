package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/hacksolana/hks/internal/contact"
	"github.com/hacksolana/hks/internal/content"
	"github.com/hacksolana/hks/internal/metrics"
	"github.com/hacksolana/hks/internal/scanner"
	"github.com/hacksolana/hks/internal/site"
)

// Default values applied by New for zero Options fields.
const (
	DefaultAddr              = ":8080"
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultShutdownTimeout   = 10 * time.Second
	DefaultMaxBodyBytes      = 64 * 1024
	DefaultConfirmDelay      = 3 * time.Second
)

// readyTimeout bounds a single readiness check.
const readyTimeout = 2 * time.Second

// Options configures a Server. Nil dependencies are replaced with defaults:
// the embedded content, a simulator with the standard delay, a contact
// service without an inbox, and a discarding logger.
type Options struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
	MaxBodyBytes      int64

	// ConfirmDelay is announced to the page and returned by the contact API.
	ConfirmDelay time.Duration

	Simulator *scanner.Simulator
	Contact   *contact.Service
	Content   *content.Content
	Renderer  *site.Renderer
	Metrics   *metrics.Metrics
	Logger    *slog.Logger

	// Ready reports whether optional backing stores are usable. Nil means always ready.
	Ready func(ctx context.Context) error
}

// Server serves the HKS site.
type Server struct {
	opts Options
}

// New creates a Server.
func New(opts Options) (*Server, error) {
	if opts.Addr == "" {
		opts.Addr = DefaultAddr
	}
	if opts.ReadHeaderTimeout <= 0 {
		opts.ReadHeaderTimeout = DefaultReadHeaderTimeout
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = DefaultShutdownTimeout
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if opts.ConfirmDelay <= 0 {
		opts.ConfirmDelay = DefaultConfirmDelay
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Simulator == nil {
		opts.Simulator = scanner.NewSimulator(scanner.WithLogger(opts.Logger))
	}
	if opts.Contact == nil {
		opts.Contact = contact.NewService(
			contact.WithMetrics(opts.Metrics),
			contact.WithLogger(opts.Logger),
		)
	}
	if opts.Content == nil {
		opts.Content = content.Default()
	}
	if opts.Renderer == nil {
		r, err := site.NewRenderer(opts.Content, site.WithConfirmDelay(opts.ConfirmDelay))
		if err != nil {
			return nil, err
		}
		opts.Renderer = r
	}
	return &Server{opts: opts}, nil
}

// Handler returns the routed handler wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.registerRoutes(mux)

	// Applied inside out: logging sees the final status of every request.
	var h http.Handler = mux
	h = recoverMiddleware(s.opts.Logger)(h)
	h = securityHeadersMiddleware(h)
	h = loggingMiddleware(s.opts.Logger, s.opts.Metrics)(h)
	return h
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.opts.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully.
// In-flight scans are allowed to finish within the shutdown timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	logger := s.opts.Logger
	server := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.opts.ReadHeaderTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	logger.Info("server listening", "addr", ln.Addr().String())

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.opts.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
