package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/hacksolana/hks/internal/model"
)

// MarkdownWriter outputs reports in Markdown format using nao1215/markdown.
// The risk level is rendered as a GitHub alert: CAUTION for High,
// WARNING for Medium and TIP for Low.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs one report.
func (w *MarkdownWriter) Write(report *model.ScanReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("HKS Risk Scan")
	md.PlainText("")
	w.writeReport(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// WriteAll outputs a summary table followed by one section per report.
func (w *MarkdownWriter) WriteAll(reports []*model.ScanReport) (int, error) {
	reports = nonNil(reports)
	md := markdown.NewMarkdown(w.output)

	md.H1("HKS Risk Scans")
	md.PlainText("")

	rows := make([][]string, len(reports))
	for i, r := range reports {
		rows[i] = []string{
			escapeCell(inlineCode(r.Address)),
			strconv.Itoa(r.Result.Score),
			levelBadge(r.Result.Level),
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Address", "Score", "Level"},
		Rows:   rows,
	})
	md.PlainText("")

	for _, r := range reports {
		md.H2(inlineCode(r.Address))
		md.PlainText("")
		w.writeReport(md, r)
	}
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

func (w *MarkdownWriter) writeReport(md *markdown.Markdown, report *model.ScanReport) {
	r := report.Result

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Address", escapeCell(inlineCode(report.Address))},
			{"Scan ID", report.ID.String()},
			{"Scanned At", report.ScannedAt.Format(timeLayout)},
			{"Risk Score", fmt.Sprintf("%d / %d", r.Score, model.MaxScore)},
			{"Risk Level", levelBadge(r.Level)},
		},
	})
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Factor", "Value"},
		Rows: [][]string{
			{"Mint Authority", r.MintAuthority.String()},
			{"Holder Concentration", strconv.Itoa(r.HolderConcentration) + "%"},
			{"Liquidity Status", r.LiquidityStatus()},
			{"Token Age", strconv.Itoa(r.TokenAge) + " days"},
			{"Deployer Reputation", r.DeployerReputation.String()},
		},
	})
	md.PlainText("")

	switch r.Level {
	case model.RiskHigh:
		md.Cautionf("High risk score of %d. Treat this token with extreme care.", r.Score)
	case model.RiskMedium:
		md.Warningf("Medium risk score of %d. Review the factors above before signing.", r.Score)
	default:
		md.Tip("Low risk score. Always do your own research.")
	}
	md.PlainText("")
}

func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*%s*", Disclaimer)
}

func levelBadge(level model.RiskLevel) string {
	switch level {
	case model.RiskHigh:
		return "🔴 High"
	case model.RiskMedium:
		return "🟡 Medium"
	default:
		return "🟢 Low"
	}
}
