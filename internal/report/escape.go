package report

import (
	"strconv"
	"strings"
	"unicode"
)

// lineBreaks flattens CR and LF so a value stays on one Markdown line.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// inlineCode renders s as a single-line Markdown code span. The fence is one
// backtick longer than the longest backtick run inside s.
func inlineCode(s string) string {
	s = lineBreaks.Replace(s)

	longest, run := 0, 0
	for _, r := range s {
		if r == '`' {
			run++
			longest = max(longest, run)
			continue
		}
		run = 0
	}
	if longest == 0 {
		return "`" + s + "`"
	}
	fence := strings.Repeat("`", longest+1)
	return fence + " " + s + " " + fence
}

// escapeCell makes s safe inside a Markdown table cell.
func escapeCell(s string) string {
	return strings.ReplaceAll(lineBreaks.Replace(s), "|", `\|`)
}

// DisplayAddress returns an address fit for a terminal line. Addresses with
// control characters are quoted so newlines and escape sequences stay inert.
func DisplayAddress(address string) string {
	if strings.IndexFunc(address, unicode.IsControl) < 0 {
		return address
	}
	return strconv.Quote(address)
}
