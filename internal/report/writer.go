package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hacksolana/hks/internal/model"
)

// Disclaimer is appended to every rendered report.
const Disclaimer = "Simulated result for demonstration only. No on-chain data was read. Not financial advice."

// Writer defines the interface for report output.
type Writer interface {
	// Write outputs one report.
	// Returns the number of bytes written and any error encountered.
	Write(report *model.ScanReport) (int, error)

	// WriteAll outputs several reports as one document. Nil entries are skipped.
	WriteAll(reports []*model.ScanReport) (int, error)
}

// Format selects a Writer implementation.
type Format int

const (
	// FormatText is the human-readable terminal format.
	FormatText Format = iota
	// FormatJSON is indented JSON.
	FormatJSON
	// FormatMarkdown is GitHub-flavoured Markdown.
	FormatMarkdown
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown report format")

var formatNames = []string{"text", "json", "markdown"}

// String returns the format name used on the command line and in query strings.
func (f Format) String() string {
	if f < FormatText || f > FormatMarkdown {
		return "unknown"
	}
	return formatNames[f]
}

// ContentType returns the HTTP media type for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json; charset=utf-8"
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

// ParseFormat converts a name into a Format. "md" and "txt" are accepted aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text", "txt", "simple":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return FormatText, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// New returns the Writer for format. Colour applies to FormatText only.
func New(format Format, output io.Writer, color bool) Writer {
	switch format {
	case FormatJSON:
		return NewJSONWriter(output, WithPrettyPrint())
	case FormatMarkdown:
		return NewMarkdownWriter(output)
	default:
		return NewSimpleWriter(output, WithColor(color))
	}
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// nonNil drops nil reports, which batch scans leave for skipped addresses.
func nonNil(reports []*model.ScanReport) []*model.ScanReport {
	out := make([]*model.ScanReport, 0, len(reports))
	for _, r := range reports {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

const timeLayout = "2006-01-02 15:04:05 MST"
