// Package database provides the SQLite-backed contact inbox.
//
// The inbox is optional. When enabled, every accepted contact form
// submission is appended to the contact_messages table so an operator can
// read it later with "hks inbox". Scan results are never stored.
//
// Design decision: SQLite through modernc.org/sqlite keeps the inbox a
// single CGO-free file next to the rest of the user's data.
package database
