// Package scanner implements the simulated token risk scanner.
//
// The scanner does not read any chain data. A Generator draws every field of
// a ScanResult independently from a pseudo-random source, and a Simulator
// adds a fixed artificial delay so a scan feels like a remote lookup.
//
// Three entry points are provided:
//   - Simulator.Scan: blocking scan used by the HTTP API
//   - Session: the scan widget state (scanning flag and latest result)
//   - BatchProcessor: concurrent scans of several addresses for the CLI
package scanner
