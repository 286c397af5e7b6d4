// Package entities contains core business entities.
package entities

import "time"

// ScanStatus enumerates verification outcomes shown to gate crew.
type ScanStatus string

const (
	// ScanValid means entry is allowed and attendance was just recorded.
	ScanValid ScanStatus = "VALID"
	// ScanUsed means the ticket was already used for entry.
	ScanUsed ScanStatus = "USED"
	// ScanInvalid means the payload or ticket could not be verified.
	ScanInvalid ScanStatus = "INVALID"
	// ScanCheckedIn is reported by the non-marking status query for tickets
	// that already have an attendance record.
	ScanCheckedIn ScanStatus = "CHECKED_IN"
)

// ScanResult is the verification verdict. Rejections (USED, INVALID) are
// results, not errors: the gate needs a displayable outcome either way.
type ScanResult struct {
	OK        bool
	Status    ScanStatus
	Message   string
	Ticket    *Ticket
	ScannedAt *time.Time
}
