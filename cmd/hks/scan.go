package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hacksolana/hks/internal/config"
	hkslog "github.com/hacksolana/hks/internal/log"
	"github.com/hacksolana/hks/internal/model"
	"github.com/hacksolana/hks/internal/report"
	"github.com/hacksolana/hks/internal/scanner"
)

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [address]...",
		Short: "Run a simulated token risk scan",
		Long: `Scan runs the simulated risk scanner from the terminal.

Each address waits for the scan delay and gets a randomly drawn result. No
blockchain is contacted and nothing about the result depends on the address.
Blank addresses are skipped.

Examples:
  # Scan one token
  hks scan So11111111111111111111111111111111111111112

  # Scan several tokens without waiting, as JSON
  hks scan --delay 0 --json TokenA TokenB TokenC

  # Write a Markdown report to a file
  hks scan --markdown -o reports/scan.md TokenA`,
		Args: cobra.ArbitraryArgs,
		RunE: runScanCmd,
	}

	cmd.Flags().DurationP("delay", "d", config.DefaultScanDelay,
		"Artificial latency of each simulated scan")
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent scans")

	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().Bool("no-color", false, "Disable colours in the text report")

	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .hks in current or home directory)")

	return cmd
}

// runScanCmd executes the scan command.
func runScanCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildScanConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := hkslog.NewSecureLogger(cmd.ErrOrStderr(), cfg.Verbose)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runScan(ctx, cfg, args, cmd.OutOrStdout(), cmd.ErrOrStderr(), logger)
}

// buildScanConfig creates a Config from the config file and scan flags.
func buildScanConfig(cmd *cobra.Command) (*config.Config, error) {
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
	if flags.Changed("delay") {
		if cfg.ScanDelay, err = flags.GetDuration("delay"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("batch") {
		if cfg.BatchSize, err = flags.GetInt("batch"); err != nil {
			return nil, err
		}
	}

	if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
		return nil, err
	}
	if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
		return nil, err
	}
	if cfg.ReportFile, err = flags.GetString("output"); err != nil {
		return nil, err
	}
	if cfg.NoColor, err = flags.GetBool("no-color"); err != nil {
		return nil, err
	}
	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// progressInterval is how often a single scan prints a progress dot.
const progressInterval = 500 * time.Millisecond

// runScan scans every non-blank address and writes one report document.
// A single address runs through a widget Session, several through the
// batch processor.
func runScan(ctx context.Context, cfg *config.Config, addresses []string, stdout, stderr io.Writer, logger *slog.Logger) error {
	var targets []string
	for _, a := range addresses {
		if !model.IsBlankAddress(a) {
			targets = append(targets, a)
		}
	}
	if len(targets) == 0 {
		logger.Debug("no addresses to scan")
		return nil
	}

	start := time.Now()
	var (
		reports []*model.ScanReport
		err     error
	)
	if len(targets) == 1 {
		reports, err = scanOne(ctx, cfg, targets[0], stderr, logger)
	} else {
		reports, err = scanBatch(ctx, cfg, targets, stderr, logger)
	}
	if err != nil {
		return fmt.Errorf("scan interrupted: %w", err)
	}
	fmt.Fprintf(stderr, "Completed in %s\n\n", time.Since(start).Round(time.Millisecond))

	return outputReports(cfg, reports, stdout)
}

// scanOne runs a single scan on a Session and prints a dot for every
// progress interval the session is still scanning.
func scanOne(ctx context.Context, cfg *config.Config, address string, stderr io.Writer, logger *slog.Logger) ([]*model.ScanReport, error) {
	done := make(chan struct{}, 1)
	session := scanner.NewSession(
		scanner.WithSessionDelay(cfg.ScanDelay),
		scanner.WithSessionLogger(logger),
		scanner.WithOnComplete(func(*model.ScanReport) { done <- struct{}{} }),
	)
	defer session.Close()

	fmt.Fprintf(stderr, "Scanning %s (simulated)", report.DisplayAddress(address))
	session.Start(address)

	ticker := time.NewTicker(progressInterval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			r := session.Result()
			fmt.Fprintf(stderr, "\n%s Risk\n", r.Result.Level)
			return []*model.ScanReport{r}, nil
		case <-ticker.C:
			if session.Scanning() {
				fmt.Fprint(stderr, ".")
			}
		case <-ctx.Done():
			fmt.Fprintln(stderr)
			return nil, ctx.Err()
		}
	}
}

// scanBatch scans targets concurrently with one progress line per result.
func scanBatch(ctx context.Context, cfg *config.Config, targets []string, stderr io.Writer, logger *slog.Logger) ([]*model.ScanReport, error) {
	sim := scanner.NewSimulator(
		scanner.WithDelay(cfg.ScanDelay),
		scanner.WithLogger(logger),
	)
	bp := scanner.NewBatchProcessor(sim,
		scanner.WithConcurrency(cfg.BatchSize),
		scanner.WithBatchLogger(logger),
	)

	total := len(targets)
	fmt.Fprintf(stderr, "Scanning %d address(es) (simulated, concurrency: %d)...\n", total, cfg.BatchSize)

	var (
		mu   sync.Mutex
		done int
	)
	return bp.ProcessBatchWithCallback(ctx, targets, func(r *model.ScanReport, _ int) {
		mu.Lock()
		defer mu.Unlock()
		done++
		fmt.Fprintf(stderr, "[%d/%d] %s: %s Risk\n", done, total, report.DisplayAddress(r.Address), r.Result.Level)
	})
}

// reportFormat maps the report flags to a format.
func reportFormat(cfg *config.Config) report.Format {
	switch {
	case cfg.JSONReport:
		return report.FormatJSON
	case cfg.MarkdownReport:
		return report.FormatMarkdown
	default:
		return report.FormatText
	}
}

// outputReports writes the reports to the report file or stdout.
// A single report is written on its own; several form one document.
func outputReports(cfg *config.Config, reports []*model.ScanReport, stdout io.Writer) error {
	output := stdout
	color := !cfg.NoColor
	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
		color = false
	}

	writer := report.New(reportFormat(cfg), output, color)

	completed := make([]*model.ScanReport, 0, len(reports))
	for _, r := range reports {
		if r != nil {
			completed = append(completed, r)
		}
	}

	var err error
	if len(completed) == 1 {
		_, err = writer.Write(completed[0])
	} else {
		_, err = writer.WriteAll(completed)
	}
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
