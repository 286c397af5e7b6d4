package jsonfile

import (
	"context"
	"time"

	"github.com/ANURA4G/event-ticketing-app/internal/entities"
)

type attendanceDoc struct {
	Records []attendanceRecord `json:"records"`
}

type attendanceRecord struct {
	TicketID  string    `json:"ticket_id"`
	TeamCode  string    `json:"team_code"`
	TeamName  string    `json:"team_name"`
	Status    string    `json:"status"`
	ScannedAt time.Time `json:"scanned_at"`
	ScannedBy string    `json:"scanned_by"`
}

func toAttendanceRecord(r entities.AttendanceRecord) attendanceRecord {
	return attendanceRecord{
		TicketID:  r.TicketID,
		TeamCode:  r.TeamCode,
		TeamName:  r.TeamName,
		Status:    string(r.Status),
		ScannedAt: r.ScannedAt,
		ScannedBy: r.ScannedBy,
	}
}

func fromAttendanceRecord(r attendanceRecord) entities.AttendanceRecord {
	return entities.AttendanceRecord{
		TicketID:  r.TicketID,
		TeamCode:  r.TeamCode,
		TeamName:  r.TeamName,
		Status:    entities.AttendanceStatus(r.Status),
		ScannedAt: r.ScannedAt,
		ScannedBy: r.ScannedBy,
	}
}

// MarkAttendance records a check-in. The ticket must still exist and must
// not have been used; both are re-checked under the write lock so two
// concurrent scans of the same code cannot both pass.
func (s *Store) MarkAttendance(_ context.Context, record entities.AttendanceRecord) (*entities.AttendanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.findTicket(record.TicketID); err != nil {
		return nil, err
	}

	var doc attendanceDoc
	if err := s.readDoc(attendanceFile, &doc); err != nil {
		return nil, err
	}
	for _, r := range doc.Records {
		if r.TicketID == record.TicketID && r.Status == string(entities.AttendancePresent) {
			return nil, entities.ErrTicketUsed
		}
	}

	doc.Records = append(doc.Records, toAttendanceRecord(record))
	if err := s.writeDoc(attendanceFile, doc); err != nil {
		return nil, err
	}

	s.log.Infow("attendance marked", "ticket_id", record.TicketID, "scanned_by", record.ScannedBy)
	return &record, nil
}

// GetAttendance returns the check-in record for a ticket, or (nil, nil) if
// the ticket has not been scanned.
func (s *Store) GetAttendance(_ context.Context, ticketID string) (*entities.AttendanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var doc attendanceDoc
	if err := s.readDoc(attendanceFile, &doc); err != nil {
		return nil, err
	}
	for _, r := range doc.Records {
		if r.TicketID == ticketID {
			rec := fromAttendanceRecord(r)
			return &rec, nil
		}
	}
	return nil, nil
}

// ListAttendance returns every check-in in scan order.
func (s *Store) ListAttendance(_ context.Context) ([]entities.AttendanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var doc attendanceDoc
	if err := s.readDoc(attendanceFile, &doc); err != nil {
		return nil, err
	}
	res := make([]entities.AttendanceRecord, 0, len(doc.Records))
	for _, r := range doc.Records {
		res = append(res, fromAttendanceRecord(r))
	}
	return res, nil
}
