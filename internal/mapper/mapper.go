// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"strings"

	"github.com/ANURA4G/event-ticketing-app/internal/api"
	"github.com/ANURA4G/event-ticketing-app/internal/entities"
)

// FromAPIIssueRequest builds an entities.IssueRequest from the transport DTO.
// CreatedBy is taken from the caller's token, not the body.
func FromAPIIssueRequest(src api.IssueTicketRequest, createdBy string) entities.IssueRequest {
	return entities.IssueRequest{
		TeamName:    src.TeamName,
		CollegeName: src.CollegeName,
		LeaderEmail: src.LeaderEmail,
		TeamSize:    src.TeamSize,
		Slot:        src.Slot,
		EventName:   src.EventName,
		CreatedBy:   createdBy,
	}
}

// ToAPISession maps a login outcome to the transport model.
func ToAPISession(s entities.Session) api.Session {
	return api.Session{
		Token:     s.Token,
		Role:      string(s.Role),
		Username:  s.Username,
		UserID:    s.UserID,
		ExpiresAt: s.ExpiresAt,
	}
}

// ToAPITicket maps entities.Ticket to the transport model. The QR payload
// stays server-side; clients fetch the rendered QR image instead.
func ToAPITicket(t entities.Ticket) api.Ticket {
	return api.Ticket{
		TicketID:    t.TicketID,
		TeamCode:    t.TeamCode,
		TeamName:    t.TeamName,
		CollegeName: t.CollegeName,
		LeaderEmail: t.LeaderEmail,
		TeamSize:    t.TeamSize,
		Slot:        t.Slot,
		EventName:   t.EventName,
		CreatedAt:   t.CreatedAt,
		CreatedBy:   t.CreatedBy,
	}
}

// ToAPITicketWithStatus maps a listing row to the transport model.
func ToAPITicketWithStatus(t entities.TicketWithStatus) api.TicketWithStatus {
	row := api.TicketWithStatus{
		Ticket:           ToAPITicket(t.Ticket),
		AttendanceStatus: "Not Checked In",
	}
	if t.CheckIn != nil {
		row.AttendanceStatus = "Present"
		scannedAt := t.CheckIn.ScannedAt
		row.ScannedAt = &scannedAt
	}
	return row
}

// ToAPITicketList maps a slice of listing rows to the transport model.
func ToAPITicketList(list []entities.TicketWithStatus) api.TicketList {
	rows := make([]api.TicketWithStatus, 0, len(list))
	for _, t := range list {
		rows = append(rows, ToAPITicketWithStatus(t))
	}
	return api.TicketList{Tickets: rows, Count: len(rows)}
}

// ToAPIIssuedTicket maps a freshly issued ticket to the transport model.
// The member account logs in with the lowercased team code as username.
func ToAPIIssuedTicket(t entities.IssuedTicket, qrURL, pdfURL string) api.IssuedTicket {
	return api.IssuedTicket{
		Ticket:         ToAPITicket(t.Ticket),
		MemberUsername: strings.ToLower(t.TeamCode),
		TempPassword:   t.TempPassword,
		QRURL:          qrURL,
		PDFURL:         pdfURL,
	}
}

// ToAPITicketDetail maps a ticket plus its artifact links to the transport model.
func ToAPITicketDetail(t entities.Ticket, qrURL, pdfURL string) api.TicketDetail {
	return api.TicketDetail{
		Ticket: ToAPITicket(t),
		QRURL:  qrURL,
		PDFURL: pdfURL,
	}
}

// ToAPIUser maps entities.User to the transport model. Password hashes never
// leave the domain.
func ToAPIUser(u entities.User) api.User {
	return api.User{
		ID:        u.ID,
		Username:  u.Username,
		Role:      string(u.Role),
		TeamName:  u.TeamName,
		CreatedAt: u.CreatedAt,
		CreatedBy: u.CreatedBy,
	}
}

// ToAPIUserList maps a slice of entities.User to the transport slice.
func ToAPIUserList(list []entities.User) []api.User {
	res := make([]api.User, 0, len(list))
	for _, u := range list {
		res = append(res, ToAPIUser(u))
	}
	return res
}

// ToAPIScanResult maps a verification verdict to the transport model. A
// fresh check-in reports its time as "timestamp", a replay reports the
// original entry as "scanned_at".
func ToAPIScanResult(r entities.ScanResult) api.ScanResult {
	res := api.ScanResult{
		Success: r.OK,
		Status:  string(r.Status),
		Message: r.Message,
	}
	if r.Ticket != nil {
		res.Ticket = &api.ScanTicket{
			TicketID:  r.Ticket.TicketID,
			TeamCode:  r.Ticket.TeamCode,
			TeamName:  r.Ticket.TeamName,
			Slot:      r.Ticket.Slot,
			EventName: r.Ticket.EventName,
		}
	}
	if r.ScannedAt != nil {
		scannedAt := *r.ScannedAt
		if r.Status == entities.ScanValid {
			res.Timestamp = &scannedAt
		} else {
			res.ScannedAt = &scannedAt
		}
	}
	return res
}

// ToAPIAttendanceRecord maps a check-in record to the transport model.
func ToAPIAttendanceRecord(rec entities.AttendanceRecord) api.AttendanceRecord {
	return api.AttendanceRecord{
		TicketID:  rec.TicketID,
		TeamCode:  rec.TeamCode,
		TeamName:  rec.TeamName,
		Status:    string(rec.Status),
		ScannedAt: rec.ScannedAt,
		ScannedBy: rec.ScannedBy,
	}
}

// ToAPIAttendanceLog maps the attendance view (records plus counters) to the
// transport model.
func ToAPIAttendanceLog(records []entities.AttendanceRecord, stats entities.Stats) api.AttendanceLog {
	rows := make([]api.AttendanceRecord, 0, len(records))
	for _, rec := range records {
		rows = append(rows, ToAPIAttendanceRecord(rec))
	}
	return api.AttendanceLog{Records: rows, Stats: ToAPIStats(stats)}
}

// ToAPIStats maps dashboard counters to the transport model.
func ToAPIStats(s entities.Stats) api.Stats {
	return api.Stats{
		TotalTickets: s.TotalTickets,
		CheckedIn:    s.CheckedIn,
		Pending:      s.Pending,
		TotalUsers:   s.TotalUsers,
	}
}

// ToAPIMemberTickets maps a member's tickets to the transport model.
func ToAPIMemberTickets(list []entities.Ticket) api.MemberTickets {
	res := make([]api.Ticket, 0, len(list))
	for _, t := range list {
		res = append(res, ToAPITicket(t))
	}
	return api.MemberTickets{Tickets: res, Count: len(res)}
}
