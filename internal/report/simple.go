package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/hacksolana/hks/internal/model"
)

const ruleWidth = 70

// SimpleWriter outputs human-readable text reports with the same colour
// coding the site uses: green for safe values, amber for caution, red for risk.
type SimpleWriter struct {
	baseWriter

	color bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithColor enables or disables ANSI colours. When enabled, fatih/color still
// drops colours if the output is not a terminal or NO_COLOR is set.
func WithColor(enabled bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.color = enabled
	}
}

// NewSimpleWriter creates a SimpleWriter. Colour is enabled by default.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		color:      true,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs one report.
func (w *SimpleWriter) Write(report *model.ScanReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb)
	w.writeReport(&sb, report)
	w.writeFooter(&sb)

	return io.WriteString(w.output, sb.String())
}

// WriteAll outputs every report under one header.
func (w *SimpleWriter) WriteAll(reports []*model.ScanReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb)
	for i, report := range nonNil(reports) {
		if i > 0 {
			sb.WriteString(strings.Repeat("-", ruleWidth))
			sb.WriteString("\n\n")
		}
		w.writeReport(&sb, report)
	}
	w.writeFooter(&sb)

	return io.WriteString(w.output, sb.String())
}

func (w *SimpleWriter) writeHeader(sb *strings.Builder) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
	sb.WriteString("                    HKS RISK SCAN (SIMULATED)\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n\n")
}

func (w *SimpleWriter) writeReport(sb *strings.Builder, report *model.ScanReport) {
	r := report.Result

	fmt.Fprintf(sb, "Address:      %s\n", DisplayAddress(report.Address))
	fmt.Fprintf(sb, "Scan ID:      %s\n", report.ID)
	fmt.Fprintf(sb, "Scanned At:   %s\n", report.ScannedAt.Format(timeLayout))
	sb.WriteString("\n")

	level := w.paint(r.Level.Color(), "%d / %d   %s Risk", r.Score, model.MaxScore, r.Level)
	fmt.Fprintf(sb, "Risk Score:   %s\n\n", level)

	sb.WriteString("  Mint Authority:        ")
	sb.WriteString(w.paint(r.MintAuthority.Color(), "%s", r.MintAuthority))
	sb.WriteString("\n")
	fmt.Fprintf(sb, "  Holder Concentration:  %d%%\n", r.HolderConcentration)
	sb.WriteString("  Liquidity Status:      ")
	sb.WriteString(w.paint(r.LiquidityColor(), "%s", r.LiquidityStatus()))
	sb.WriteString("\n")
	fmt.Fprintf(sb, "  Token Age:             %d days\n", r.TokenAge)
	sb.WriteString("  Deployer Reputation:   ")
	sb.WriteString(w.paint(r.DeployerReputation.Color(), "%s", r.DeployerReputation))
	sb.WriteString("\n\n")
}

func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
	sb.WriteString(Disclaimer)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
}

// paint formats text in the terminal colour closest to the site colour hex.
func (w *SimpleWriter) paint(hex, format string, args ...any) string {
	c := color.New(terminalColor(hex), color.Bold)
	if !w.color {
		c.DisableColor()
	}
	return c.Sprintf(format, args...)
}

func terminalColor(hex string) color.Attribute {
	switch hex {
	case model.ColorGreen:
		return color.FgGreen
	case model.ColorAmber:
		return color.FgYellow
	case model.ColorRed:
		return color.FgRed
	default:
		return color.FgWhite
	}
}
