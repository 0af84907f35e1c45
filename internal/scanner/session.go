package scanner

import (
	"log/slog"
	"sync"
	"time"

	"github.com/hacksolana/hks/internal/clock"
	hkslog "github.com/hacksolana/hks/internal/log"
	"github.com/hacksolana/hks/internal/model"
)

// Session holds the state of one scanner widget: whether a scan is in flight
// and the latest completed report.
//
// A scan is started with Start and completes on a timer. There is no
// cancellation and no deduplication: when Start is called again while a scan
// is in flight, the earlier timer still fires but its result is discarded,
// so the most recent request always wins.
type Session struct {
	mu         sync.Mutex
	generator  *Generator
	delay      time.Duration
	afterFunc  clock.AfterFunc
	logger     *slog.Logger
	onComplete func(*model.ScanReport)

	scanning   bool
	result     *model.ScanReport
	generation uint64
	timers     []clock.Timer
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithSessionDelay sets the scan delay. Negative values are treated as zero.
func WithSessionDelay(d time.Duration) SessionOption {
	return func(s *Session) {
		if d < 0 {
			d = 0
		}
		s.delay = d
	}
}

// WithSessionGenerator sets the result generator.
func WithSessionGenerator(g *Generator) SessionOption {
	return func(s *Session) {
		if g != nil {
			s.generator = g
		}
	}
}

// WithAfterFunc replaces the timer scheduler. Tests use clock.Manual.
func WithAfterFunc(f clock.AfterFunc) SessionOption {
	return func(s *Session) {
		if f != nil {
			s.afterFunc = f
		}
	}
}

// WithSessionLogger sets the logger.
func WithSessionLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithOnComplete registers a callback invoked with each published report.
// The callback runs outside the session lock.
func WithOnComplete(f func(*model.ScanReport)) SessionOption {
	return func(s *Session) {
		s.onComplete = f
	}
}

// NewSession creates an idle Session.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		delay:     DefaultDelay,
		afterFunc: clock.Real,
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

// Start begins a scan of address.
//
// A blank address is a no-op: Start returns false and the scanning flag is
// left untouched. Otherwise the scanning flag is set, the previous result is
// cleared, and the result is published after the session delay.
func (s *Session) Start(address string) bool {
	if model.IsBlankAddress(address) {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	gen := s.generation
	s.scanning = true
	s.result = nil

	s.logger.Debug("widget scan started",
		"address_digest", hkslog.Digest(address),
		"generation", gen,
	)

	t := s.afterFunc(s.delay, func() { s.complete(gen, address) })
	s.timers = append(s.timers, t)
	return true
}

// complete publishes the result of scan gen unless a newer scan was started.
func (s *Session) complete(gen uint64, address string) {
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		s.logger.Debug("stale widget scan ignored", "generation", gen)
		return
	}

	report := model.NewScanReport(address, s.generator.Generate())
	s.result = report
	s.scanning = false
	s.timers = nil
	onComplete := s.onComplete
	s.mu.Unlock()

	if onComplete != nil {
		onComplete(report)
	}
}

// Scanning reports whether a scan is in flight.
func (s *Session) Scanning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scanning
}

// Result returns a copy of the latest published report, or nil when no scan
// has completed since the last Start.
func (s *Session) Result() *model.ScanReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.result == nil {
		return nil
	}
	r := *s.result
	return &r
}

// Close abandons pending timers, as leaving the page does.
// The scanning flag and the last result are left as they are.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.timers {
		t.Stop()
	}
	s.timers = nil
	s.generation++
}
