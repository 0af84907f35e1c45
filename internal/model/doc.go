// Package model defines the data structures shared by the HKS site service.
//
// This package contains the following main types:
//   - ScanRequest: The address submitted to the risk scanner
//   - ScanResult: The simulated risk metrics for one scan
//   - ScanReport: A ScanResult wrapped with scan metadata for transport
//   - ContactMessage: A contact form submission
//
// Design decision: The models live in their own package because the scanner,
// contact, report, database and server packages all need them, and keeping
// them here prevents import cycles.
//
// Every ScanResult is simulated. No field is derived from the scanned address.
package model
