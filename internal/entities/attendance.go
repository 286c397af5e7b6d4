// Package entities contains core business entities.
package entities

import "time"

// AttendanceStatus enumerates check-in record states.
type AttendanceStatus string

const (
	// AttendancePresent marks a ticket as used for entry.
	AttendancePresent AttendanceStatus = "present"
)

// AttendanceRecord captures a gate check-in. At most one record exists per
// ticket; its presence is what makes a ticket "used".
type AttendanceRecord struct {
	TicketID  string
	TeamCode  string
	TeamName  string
	Status    AttendanceStatus
	ScannedAt time.Time
	ScannedBy string
}
