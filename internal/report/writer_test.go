package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/hacksolana/hks/internal/model"
)

func createTestReport(address string, score int) *model.ScanReport {
	return &model.ScanReport{
		ID:        uuid.MustParse("5f1b0a7e-3c2d-4e8f-9a61-0b2c3d4e5f60"),
		Address:   address,
		ScannedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Simulated: true,
		Result: model.ScanResult{
			Score:               score,
			Level:               model.LevelForScore(score),
			MintAuthority:       model.MintActive,
			HolderConcentration: 42,
			LiquidityLocked:     true,
			TokenAge:            120,
			DeployerReputation:  model.DeployerUnknown,
		},
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "json", want: FormatJSON},
		{input: "Markdown", want: FormatMarkdown},
		{input: "md", want: FormatMarkdown},
		{input: "text", want: FormatText},
		{input: "txt", want: FormatText},
		{input: "xml", want: FormatText, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrUnknownFormat) {
				t.Errorf("expected ErrUnknownFormat, got %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormat_ContentType(t *testing.T) {
	t.Parallel()

	if got := FormatJSON.ContentType(); !strings.HasPrefix(got, "application/json") {
		t.Errorf("FormatJSON.ContentType() = %q", got)
	}
	if got := FormatMarkdown.ContentType(); !strings.HasPrefix(got, "text/markdown") {
		t.Errorf("FormatMarkdown.ContentType() = %q", got)
	}
	if got := FormatText.ContentType(); !strings.HasPrefix(got, "text/plain") {
		t.Errorf("FormatText.ContentType() = %q", got)
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, ok := New(FormatJSON, &buf, false).(*JSONWriter); !ok {
		t.Error("expected JSONWriter for FormatJSON")
	}
	if _, ok := New(FormatMarkdown, &buf, false).(*MarkdownWriter); !ok {
		t.Error("expected MarkdownWriter for FormatMarkdown")
	}
	if _, ok := New(FormatText, &buf, false).(*SimpleWriter); !ok {
		t.Error("expected SimpleWriter for FormatText")
	}
}

func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes every factor", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf, WithColor(false))

		if _, err := w.Write(createTestReport("ABC123", 57)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		for _, want := range []string{
			"HKS RISK SCAN (SIMULATED)",
			"ABC123",
			"57 / 100   Medium Risk",
			"Mint Authority:        Active",
			"Holder Concentration:  42%",
			"Liquidity Status:      Locked",
			"Token Age:             120 days",
			"Deployer Reputation:   Unknown",
			Disclaimer,
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q\n%s", want, output)
			}
		}
	})

	t.Run("disabled colour emits no escape codes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf, WithColor(false))

		if _, err := w.Write(createTestReport("ABC123", 90)); err != nil {
			t.Fatal(err)
		}
		if strings.Contains(buf.String(), "\x1b[") {
			t.Error("expected no ANSI escape codes")
		}
	})

	t.Run("WriteAll skips nil entries", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf, WithColor(false))

		reports := []*model.ScanReport{createTestReport("AAA", 10), nil, createTestReport("BBB", 80)}
		if _, err := w.WriteAll(reports); err != nil {
			t.Fatal(err)
		}

		output := buf.String()
		if strings.Count(output, "Address:") != 2 {
			t.Errorf("expected two reports, got:\n%s", output)
		}
		if !strings.Contains(output, "High Risk") || !strings.Contains(output, "Low Risk") {
			t.Errorf("expected both levels in output:\n%s", output)
		}
	})
}

func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes the API document shape", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)

		if _, err := w.Write(createTestReport("ABC123", 71)); err != nil {
			t.Fatal(err)
		}

		data := buf.Bytes()
		checks := map[string]string{
			"address":                   "ABC123",
			"simulated":                 "true",
			"result.score":              "71",
			"result.level":              "High",
			"result.mintAuthority":      "Active",
			"result.liquidityLocked":    "true",
			"result.deployerReputation": "Unknown",
		}
		for path, want := range checks {
			if got := gjson.GetBytes(data, path).String(); got != want {
				t.Errorf("%s = %q, want %q", path, got, want)
			}
		}
		if strings.Contains(buf.String(), "\n  ") {
			t.Error("expected compact output by default")
		}
	})

	t.Run("pretty print indents output", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf, WithPrettyPrint())

		if _, err := w.Write(createTestReport("ABC123", 10)); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), "\n  \"address\"") {
			t.Errorf("expected indented output, got:\n%s", buf.String())
		}
	})

	t.Run("WriteAll writes an array without nil entries", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)

		if _, err := w.WriteAll([]*model.ScanReport{nil, createTestReport("AAA", 1)}); err != nil {
			t.Fatal(err)
		}
		if got := gjson.GetBytes(buf.Bytes(), "#").Int(); got != 1 {
			t.Errorf("array length = %d, want 1", got)
		}
		if got := gjson.GetBytes(buf.Bytes(), "0.address").String(); got != "AAA" {
			t.Errorf("first address = %q, want AAA", got)
		}
	})
}

func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		score int
		alert string
	}{
		{name: "high risk renders a caution alert", score: 95, alert: "[!CAUTION]"},
		{name: "medium risk renders a warning alert", score: 55, alert: "[!WARNING]"},
		{name: "low risk renders a tip alert", score: 5, alert: "[!TIP]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			w := NewMarkdownWriter(&buf)

			if _, err := w.Write(createTestReport("ABC123", tt.score)); err != nil {
				t.Fatal(err)
			}

			output := buf.String()
			for _, want := range []string{"# HKS Risk Scan", "`ABC123`", "Holder Concentration", tt.alert, Disclaimer} {
				if !strings.Contains(output, want) {
					t.Errorf("expected output to contain %q\n%s", want, output)
				}
			}
		})
	}

	t.Run("WriteAll renders a summary table", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)

		if _, err := w.WriteAll([]*model.ScanReport{createTestReport("AAA", 10), createTestReport("BBB", 99)}); err != nil {
			t.Fatal(err)
		}

		output := buf.String()
		for _, want := range []string{"# HKS Risk Scans", "## `AAA`", "## `BBB`", "🔴 High", "🟢 Low"} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q\n%s", want, output)
			}
		}
	})
}

func TestMarkdownWriter_FreeTextAddress(t *testing.T) {
	t.Parallel()

	const address = "abc|def\n# Injected heading"

	check := func(t *testing.T, output string) {
		t.Helper()
		if strings.Contains(output, "\n# Injected heading") {
			t.Errorf("address started a new Markdown block:\n%s", output)
		}
		if !strings.Contains(output, "`abc\\|def # Injected heading`") {
			t.Errorf("expected the pipe escaped inside one table cell:\n%s", output)
		}
	}

	t.Run("single report keeps the address in one cell", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(createTestReport(address, 10)); err != nil {
			t.Fatal(err)
		}
		check(t, buf.String())
	})

	t.Run("summary table and section heading stay on one line", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		reports := []*model.ScanReport{createTestReport(address, 10), createTestReport("BBB", 99)}
		if _, err := NewMarkdownWriter(&buf).WriteAll(reports); err != nil {
			t.Fatal(err)
		}
		output := buf.String()
		check(t, output)
		if !strings.Contains(output, "## `abc|def # Injected heading`") {
			t.Errorf("expected a single-line heading:\n%s", output)
		}
	})
}

func TestInlineCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "ABC123", want: "`ABC123`"},
		{in: "a`b", want: "`` a`b ``"},
		{in: "x``y", want: "``` x``y ```"},
		{in: "one\r\ntwo\nthree", want: "`one two three`"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			if got := inlineCode(tt.in); got != tt.want {
				t.Errorf("inlineCode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDisplayAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain address is unchanged", in: "So11111111111111111111111111111111111111112", want: "So11111111111111111111111111111111111111112"},
		{name: "newline is quoted", in: "abc\nFAKE LINE", want: `"abc\nFAKE LINE"`},
		{name: "terminal escape is quoted", in: "\x1b[31mred", want: `"\x1b[31mred"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := DisplayAddress(tt.in); got != tt.want {
				t.Errorf("DisplayAddress(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSimpleWriter_QuotesControlCharacters(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewSimpleWriter(&buf, WithColor(false)).Write(createTestReport("abc\nRisk Score:   0", 95)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `Address:      "abc\nRisk Score:   0"`) {
		t.Errorf("expected the address quoted on one line:\n%s", buf.String())
	}
}
