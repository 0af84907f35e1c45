package scanner

import (
	"context"
	"log/slog"
	"time"

	hkslog "github.com/hacksolana/hks/internal/log"
	"github.com/hacksolana/hks/internal/model"
)

// DefaultDelay is the artificial latency of a scan.
const DefaultDelay = 2500 * time.Millisecond

// Simulator produces simulated scan reports after a fixed delay.
type Simulator struct {
	generator *Generator
	delay     time.Duration
	logger    *slog.Logger
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithDelay sets the artificial latency. Negative values are treated as zero.
func WithDelay(d time.Duration) Option {
	return func(s *Simulator) {
		if d < 0 {
			d = 0
		}
		s.delay = d
	}
}

// WithGenerator sets the result generator.
func WithGenerator(g *Generator) Option {
	return func(s *Simulator) {
		if g != nil {
			s.generator = g
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Simulator) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSimulator creates a Simulator with DefaultDelay and a time-seeded generator.
func NewSimulator(opts ...Option) *Simulator {
	s := &Simulator{
		delay: DefaultDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.generator == nil {
		s.generator = NewGenerator(nil)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Delay returns the configured artificial latency.
func (s *Simulator) Delay() time.Duration {
	return s.delay
}

// Generator returns the generator used by the simulator.
func (s *Simulator) Generator() *Generator {
	return s.generator
}

// Scan waits for the configured delay and returns a simulated report.
//
// A blank address returns ErrEmptyAddress immediately, without waiting.
// Any other address is accepted without format validation. The only other
// error is the context error when ctx ends before the delay elapses.
func (s *Simulator) Scan(ctx context.Context, address string) (*model.ScanReport, error) {
	if model.IsBlankAddress(address) {
		return nil, ErrEmptyAddress
	}

	s.logger.Debug("scan started",
		"address_digest", hkslog.Digest(address),
		"delay", s.delay,
	)

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			s.logger.Debug("scan abandoned",
				"address_digest", hkslog.Digest(address),
				"reason", ctx.Err(),
			)
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	report := model.NewScanReport(address, s.generator.Generate())

	s.logger.Info("scan completed",
		"scan_id", report.ID.String(),
		"address_digest", hkslog.Digest(address),
		"score", report.Result.Score,
		"level", report.Result.Level.String(),
	)

	return report, nil
}
