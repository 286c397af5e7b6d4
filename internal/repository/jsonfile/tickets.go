package jsonfile

import (
	"context"
	"time"

	"github.com/ANURA4G/event-ticketing-app/internal/entities"
)

type ticketsDoc struct {
	Tickets []ticketRecord `json:"tickets"`
}

type ticketRecord struct {
	TicketID    string    `json:"ticket_id"`
	TeamCode    string    `json:"team_code"`
	TeamName    string    `json:"team_name"`
	CollegeName string    `json:"college_name"`
	LeaderEmail string    `json:"team_leader_email"`
	TeamSize    int       `json:"team_size"`
	Slot        string    `json:"slot"`
	EventName   string    `json:"event_name"`
	QRPayload   string    `json:"qr_payload"`
	CreatedAt   time.Time `json:"created_at"`
	CreatedBy   string    `json:"created_by"`
}

func toTicketRecord(t entities.Ticket) ticketRecord {
	return ticketRecord{
		TicketID:    t.TicketID,
		TeamCode:    t.TeamCode,
		TeamName:    t.TeamName,
		CollegeName: t.CollegeName,
		LeaderEmail: t.LeaderEmail,
		TeamSize:    t.TeamSize,
		Slot:        t.Slot,
		EventName:   t.EventName,
		QRPayload:   t.QRPayload,
		CreatedAt:   t.CreatedAt,
		CreatedBy:   t.CreatedBy,
	}
}

func fromTicketRecord(r ticketRecord) entities.Ticket {
	return entities.Ticket{
		TicketID:    r.TicketID,
		TeamCode:    r.TeamCode,
		TeamName:    r.TeamName,
		CollegeName: r.CollegeName,
		LeaderEmail: r.LeaderEmail,
		TeamSize:    r.TeamSize,
		Slot:        r.Slot,
		EventName:   r.EventName,
		QRPayload:   r.QRPayload,
		CreatedAt:   r.CreatedAt,
		CreatedBy:   r.CreatedBy,
	}
}

// CreateTicket appends a ticket.
func (s *Store) CreateTicket(_ context.Context, ticket entities.Ticket) (*entities.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc ticketsDoc
	if err := s.readDoc(ticketsFile, &doc); err != nil {
		return nil, err
	}
	doc.Tickets = append(doc.Tickets, toTicketRecord(ticket))
	if err := s.writeDoc(ticketsFile, doc); err != nil {
		return nil, err
	}

	s.log.Infow("ticket created", "ticket_id", ticket.TicketID, "team_code", ticket.TeamCode)
	return &ticket, nil
}

// GetTicket fetches one ticket by id.
func (s *Store) GetTicket(_ context.Context, ticketID string) (*entities.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findTicket(ticketID)
}

// findTicket is the lock-free lookup shared by read paths; callers hold s.mu.
func (s *Store) findTicket(ticketID string) (*entities.Ticket, error) {
	var doc ticketsDoc
	if err := s.readDoc(ticketsFile, &doc); err != nil {
		return nil, err
	}
	for _, r := range doc.Tickets {
		if r.TicketID == ticketID {
			t := fromTicketRecord(r)
			return &t, nil
		}
	}
	return nil, entities.ErrTicketNotFound
}

// GetTicketByTeamCode fetches one ticket by its team code.
func (s *Store) GetTicketByTeamCode(_ context.Context, teamCode string) (*entities.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var doc ticketsDoc
	if err := s.readDoc(ticketsFile, &doc); err != nil {
		return nil, err
	}
	for _, r := range doc.Tickets {
		if r.TeamCode == teamCode {
			t := fromTicketRecord(r)
			return &t, nil
		}
	}
	return nil, entities.ErrTicketNotFound
}

// ListTickets returns every ticket joined with its check-in record.
func (s *Store) ListTickets(_ context.Context) ([]entities.TicketWithStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		tickets    ticketsDoc
		attendance attendanceDoc
	)
	if err := s.readDoc(ticketsFile, &tickets); err != nil {
		return nil, err
	}
	if err := s.readDoc(attendanceFile, &attendance); err != nil {
		return nil, err
	}

	byTicket := make(map[string]attendanceRecord, len(attendance.Records))
	for _, r := range attendance.Records {
		byTicket[r.TicketID] = r
	}

	res := make([]entities.TicketWithStatus, 0, len(tickets.Tickets))
	for _, r := range tickets.Tickets {
		row := entities.TicketWithStatus{Ticket: fromTicketRecord(r)}
		if rec, ok := byTicket[r.TicketID]; ok {
			checkIn := fromAttendanceRecord(rec)
			row.CheckIn = &checkIn
		}
		res = append(res, row)
	}
	return res, nil
}

// ListTicketsByTeamCode returns the tickets registered under one team code.
func (s *Store) ListTicketsByTeamCode(_ context.Context, teamCode string) ([]entities.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var doc ticketsDoc
	if err := s.readDoc(ticketsFile, &doc); err != nil {
		return nil, err
	}
	res := make([]entities.Ticket, 0, 1)
	for _, r := range doc.Tickets {
		if r.TeamCode == teamCode {
			res = append(res, fromTicketRecord(r))
		}
	}
	return res, nil
}

// DeleteTicket removes a ticket together with its member account and
// attendance record.
func (s *Store) DeleteTicket(_ context.Context, ticketID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var tickets ticketsDoc
	if err := s.readDoc(ticketsFile, &tickets); err != nil {
		return err
	}

	teamCode := ""
	kept := tickets.Tickets[:0]
	for _, r := range tickets.Tickets {
		if r.TicketID == ticketID {
			teamCode = r.TeamCode
			continue
		}
		kept = append(kept, r)
	}
	if teamCode == "" {
		return entities.ErrTicketNotFound
	}
	tickets.Tickets = kept
	if err := s.writeDoc(ticketsFile, tickets); err != nil {
		return err
	}

	var users usersDoc
	if err := s.readDoc(usersFile, &users); err != nil {
		return err
	}
	keptUsers := users.Users[:0]
	for _, r := range users.Users {
		if r.ID == teamCode && r.Role == string(entities.RoleMember) {
			continue
		}
		keptUsers = append(keptUsers, r)
	}
	users.Users = keptUsers
	if err := s.writeDoc(usersFile, users); err != nil {
		return err
	}

	var attendance attendanceDoc
	if err := s.readDoc(attendanceFile, &attendance); err != nil {
		return err
	}
	keptRecords := attendance.Records[:0]
	for _, r := range attendance.Records {
		if r.TicketID == ticketID {
			continue
		}
		keptRecords = append(keptRecords, r)
	}
	attendance.Records = keptRecords
	if err := s.writeDoc(attendanceFile, attendance); err != nil {
		return err
	}

	s.log.Infow("ticket deleted", "ticket_id", ticketID, "team_code", teamCode)
	return nil
}

// ClearTickets empties the ticket and attendance documents. Accounts stay.
func (s *Store) ClearTickets(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writeDoc(ticketsFile, ticketsDoc{Tickets: []ticketRecord{}}); err != nil {
		return err
	}
	if err := s.writeDoc(attendanceFile, attendanceDoc{Records: []attendanceRecord{}}); err != nil {
		return err
	}

	s.log.Infow("all tickets cleared")
	return nil
}
