package model

import (
	"time"

	"github.com/google/uuid"
)

// ScanReport wraps a ScanResult with the metadata of the scan that produced it.
//
// Design decision: The envelope is kept apart from ScanResult so the result
// keeps the exact shape the site renders, while the API and the CLI can still
// identify and timestamp each scan.
type ScanReport struct {
	// ID uniquely identifies this scan.
	ID uuid.UUID `json:"id"`

	// Address is the address exactly as it was submitted.
	Address string `json:"address"`

	// ScannedAt is when the result was generated.
	ScannedAt time.Time `json:"scannedAt"`

	// Simulated is always true. The result is fabricated and does not
	// reflect any on-chain data.
	Simulated bool `json:"simulated"`

	// Result holds the risk metrics.
	Result ScanResult `json:"result"`
}

// NewScanReport creates a report for address with a fresh ID.
func NewScanReport(address string, result ScanResult) *ScanReport {
	return &ScanReport{
		ID:        uuid.New(),
		Address:   address,
		ScannedAt: time.Now().UTC(),
		Simulated: true,
		Result:    result,
	}
}
