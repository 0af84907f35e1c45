package scanner

import (
	"context"
	"log/slog"
	"time"

	"github.com/hacksolana/hks/internal/model"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the default number of concurrent scans in a batch.
const DefaultConcurrency = 10

// BatchProcessor runs simulated scans for several addresses concurrently.
//
// Design decision: errgroup.SetLimit bounds the number of in-flight scans
// instead of a hand-written worker pool.
type BatchProcessor struct {
	simulator   *Simulator
	concurrency int
	logger      *slog.Logger
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithConcurrency sets the maximum number of concurrent scans.
// Values below one are ignored.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// WithBatchLogger sets the logger for batch-level events.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewBatchProcessor creates a BatchProcessor backed by sim.
func NewBatchProcessor(sim *Simulator, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		simulator:   sim,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(bp)
	}
	if bp.logger == nil {
		bp.logger = slog.Default()
	}
	return bp
}

// ProcessBatch scans all addresses and returns the reports in input order.
// Blank addresses are skipped and leave a nil entry.
func (bp *BatchProcessor) ProcessBatch(ctx context.Context, addresses []string) ([]*model.ScanReport, error) {
	return bp.ProcessBatchWithCallback(ctx, addresses, nil)
}

// ProcessBatchWithCallback scans all addresses and calls callback as each
// scan completes. Callbacks may run concurrently; callers must synchronize.
func (bp *BatchProcessor) ProcessBatchWithCallback(
	ctx context.Context,
	addresses []string,
	callback func(report *model.ScanReport, index int),
) ([]*model.ScanReport, error) {
	bp.logger.Info("starting batch scan",
		"total", len(addresses),
		"concurrency", bp.concurrency,
	)
	start := time.Now()

	results := make([]*model.ScanReport, len(addresses))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, address := range addresses {
		if model.IsBlankAddress(address) {
			bp.logger.Debug("skipping blank address", "index", i)
			continue
		}

		g.Go(func() error {
			report, err := bp.simulator.Scan(gctx, address)
			if err != nil {
				return err
			}
			results[i] = report
			if callback != nil {
				callback(report, i)
			}
			return nil
		})
	}

	err := g.Wait()

	bp.logger.Info("batch scan finished",
		"total", len(addresses),
		"elapsed", time.Since(start).Round(time.Millisecond),
		"error", err,
	)

	return results, err
}
