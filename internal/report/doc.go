// Package report renders scan reports for people and tools.
//
// This package contains writers for three output formats:
//   - SimpleWriter: colour-coded text for the terminal
//   - JSONWriter: JSON for tool integration and the HTTP API
//   - MarkdownWriter: Markdown for sharing in issues and chats
//
// Every format states that the result is simulated.
package report
