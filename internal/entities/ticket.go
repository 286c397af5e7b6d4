// Package entities contains core business entities.
package entities

import "time"

// Ticket is a team registration granting event access. TeamCode is the
// HF26-prefixed code printed on the pass for manual entry; TicketID is the
// short identifier encoded in the QR payload and used in URLs.
type Ticket struct {
	TicketID    string
	TeamCode    string
	TeamName    string
	CollegeName string
	LeaderEmail string
	TeamSize    int
	Slot        string
	EventName   string
	QRPayload   string
	CreatedAt   time.Time
	CreatedBy   string
}

// TicketWithStatus is a ticket enriched with its check-in record, if any.
type TicketWithStatus struct {
	Ticket
	CheckIn *AttendanceRecord
}

// IssueRequest carries the admin input for creating a ticket.
type IssueRequest struct {
	TeamName    string
	CollegeName string
	LeaderEmail string
	TeamSize    int
	Slot        string
	EventName   string
	CreatedBy   string
}

// IssuedTicket is the creation result. TempPassword is the member account's
// generated password, present only here and never persisted in plaintext.
type IssuedTicket struct {
	Ticket
	TempPassword string
}
