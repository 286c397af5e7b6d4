package api

import "time"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Session struct {
	Token     string    `json:"token"`
	Role      string    `json:"role"`
	Username  string    `json:"username"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

type CreateScannerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	TeamName  string    `json:"team_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by,omitempty"`
}

type IssueTicketRequest struct {
	TeamName    string `json:"team_name"`
	CollegeName string `json:"college_name"`
	LeaderEmail string `json:"team_leader_email"`
	TeamSize    int    `json:"team_size"`
	Slot        string `json:"slot,omitempty"`
	EventName   string `json:"event_name,omitempty"`
}

type Ticket struct {
	TicketID    string    `json:"ticket_id"`
	TeamCode    string    `json:"team_code"`
	TeamName    string    `json:"team_name"`
	CollegeName string    `json:"college_name"`
	LeaderEmail string    `json:"team_leader_email"`
	TeamSize    int       `json:"team_size"`
	Slot        string    `json:"slot"`
	EventName   string    `json:"event_name"`
	CreatedAt   time.Time `json:"created_at"`
	CreatedBy   string    `json:"created_by"`
}

// IssuedTicket is returned once per issue. TempPassword is the only place
// the member's initial password ever appears.
type IssuedTicket struct {
	Ticket
	MemberUsername string `json:"member_username"`
	TempPassword   string `json:"temp_password"`
	QRURL          string `json:"qr_url"`
	PDFURL         string `json:"pdf_url"`
}

// TicketWithStatus is a listing row: the ticket plus its check-in state.
type TicketWithStatus struct {
	Ticket
	AttendanceStatus string     `json:"attendance_status"`
	ScannedAt        *time.Time `json:"scanned_at,omitempty"`
}

// TicketDetail is the single-ticket admin view with artifact links.
type TicketDetail struct {
	Ticket
	QRURL  string `json:"qr_url"`
	PDFURL string `json:"pdf_url"`
}

type TicketList struct {
	Tickets []TicketWithStatus `json:"tickets"`
	Count   int                `json:"count"`
}

type VerifyScanRequest struct {
	QRData string `json:"qr_data"`
}

type ManualCheckInRequest struct {
	Code string `json:"code"`
}

// ScanTicket is the ticket summary embedded in scan responses.
type ScanTicket struct {
	TicketID  string `json:"ticket_id"`
	TeamCode  string `json:"team_code"`
	TeamName  string `json:"team_name"`
	Slot      string `json:"slot,omitempty"`
	EventName string `json:"event_name,omitempty"`
}

// ScanResult is returned by every scan endpoint with HTTP 200; Status and
// Success carry the verdict. Timestamp is set when a check-in happens now,
// ScannedAt when the ticket was already used earlier.
type ScanResult struct {
	Success   bool        `json:"success"`
	Status    string      `json:"status"`
	Message   string      `json:"message"`
	Ticket    *ScanTicket `json:"ticket,omitempty"`
	Timestamp *time.Time  `json:"timestamp,omitempty"`
	ScannedAt *time.Time  `json:"scanned_at,omitempty"`
}

type AttendanceRecord struct {
	TicketID  string    `json:"ticket_id"`
	TeamCode  string    `json:"team_code"`
	TeamName  string    `json:"team_name"`
	Status    string    `json:"status"`
	ScannedAt time.Time `json:"scanned_at"`
	ScannedBy string    `json:"scanned_by"`
}

type AttendanceLog struct {
	Records []AttendanceRecord `json:"records"`
	Stats   Stats              `json:"stats"`
}

type Stats struct {
	TotalTickets int `json:"total_tickets"`
	CheckedIn    int `json:"checked_in"`
	Pending      int `json:"pending"`
	TotalUsers   int `json:"total_users"`
}

type MemberTickets struct {
	Tickets []Ticket `json:"tickets"`
	Count   int      `json:"count"`
}

type Health struct {
	Status string `json:"status"`
}
