// Package domain contains application Usecases orchestrating domain logic
// for tickets and their artifacts.
package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ANURA4G/event-ticketing-app/internal/entities"
	"github.com/ANURA4G/event-ticketing-app/internal/idgen"
	"github.com/ANURA4G/event-ticketing-app/internal/pdf"
	"github.com/ANURA4G/event-ticketing-app/internal/qr"
)

// issueAttempts bounds the retries on a team-code collision. The code space
// is 36^6 so more than one retry is already unlikely.
const issueAttempts = 5

// IssueTicket registers a team: it creates the member account (username is
// the lowercased team code, password returned in plaintext exactly once)
// and the ticket with its signed QR payload.
func (u *Usecase) IssueTicket(ctx context.Context, req entities.IssueRequest) (*entities.IssuedTicket, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	req.TeamName = strings.TrimSpace(req.TeamName)
	req.CollegeName = strings.TrimSpace(req.CollegeName)
	req.LeaderEmail = strings.TrimSpace(req.LeaderEmail)
	req.Slot = strings.TrimSpace(req.Slot)
	req.EventName = strings.TrimSpace(req.EventName)

	if req.TeamName == "" {
		return nil, fmt.Errorf("%w: team_name is required", entities.ErrInvalidArgument)
	}
	if req.CollegeName == "" {
		return nil, fmt.Errorf("%w: college_name is required", entities.ErrInvalidArgument)
	}
	if req.LeaderEmail == "" || !strings.Contains(req.LeaderEmail, "@") {
		return nil, fmt.Errorf("%w: team_leader_email must be a valid address", entities.ErrInvalidArgument)
	}
	if req.TeamSize == 0 {
		req.TeamSize = u.cfg.Event.DefaultTeamSize
	}
	if req.TeamSize < 2 || req.TeamSize > 4 {
		return nil, fmt.Errorf("%w: team_size must be between 2 and 4", entities.ErrInvalidArgument)
	}
	if req.Slot == "" {
		req.Slot = u.cfg.Event.DefaultSlot
	}
	if req.EventName == "" {
		req.EventName = u.cfg.Event.Name
	}

	tempPassword := idgen.TempPassword()
	passwordHash, err := u.hasher.Hash(tempPassword)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for attempt := 0; ; attempt++ {
		teamCode := idgen.TeamCode()
		ticketID := idgen.TicketID()

		member := entities.User{
			ID:           teamCode,
			Username:     strings.ToLower(teamCode),
			PasswordHash: passwordHash,
			Role:         entities.RoleMember,
			TeamName:     req.TeamName,
			CreatedAt:    now,
			CreatedBy:    req.CreatedBy,
		}
		if _, err := u.repo.CreateUser(ctx, member); err != nil {
			if errors.Is(err, entities.ErrUserExists) && attempt+1 < issueAttempts {
				continue
			}
			return nil, err
		}

		payload, err := u.codec.Encode(ticketID, teamCode, req.TeamName, now)
		if err != nil {
			return nil, err
		}

		created, err := u.repo.CreateTicket(ctx, entities.Ticket{
			TicketID:    ticketID,
			TeamCode:    teamCode,
			TeamName:    req.TeamName,
			CollegeName: req.CollegeName,
			LeaderEmail: req.LeaderEmail,
			TeamSize:    req.TeamSize,
			Slot:        req.Slot,
			EventName:   req.EventName,
			QRPayload:   payload,
			CreatedAt:   now,
			CreatedBy:   req.CreatedBy,
		})
		if err != nil {
			return nil, err
		}

		u.log.Infow("ticket issued", "ticket_id", ticketID, "team_code", teamCode, "team", req.TeamName)
		return &entities.IssuedTicket{Ticket: *created, TempPassword: tempPassword}, nil
	}
}

// Ticket returns one ticket by id.
func (u *Usecase) Ticket(ctx context.Context, ticketID string) (*entities.Ticket, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if ticketID == "" {
		return nil, fmt.Errorf("%w: ticket_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetTicket(ctx, ticketID)
}

// TicketsOverview returns all tickets with their check-in status.
func (u *Usecase) TicketsOverview(ctx context.Context) ([]entities.TicketWithStatus, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListTickets(ctx)
}

// RemoveTicket deletes a ticket, its member account and attendance record.
func (u *Usecase) RemoveTicket(ctx context.Context, ticketID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if ticketID == "" {
		return fmt.Errorf("%w: ticket_id is required", entities.ErrInvalidArgument)
	}
	if err := u.repo.DeleteTicket(ctx, ticketID); err != nil {
		return err
	}
	u.log.Infow("ticket removed", "ticket_id", ticketID)
	return nil
}

// ClearAllTeams wipes tickets and attendance. Accounts survive so scanners
// keep working between dry runs.
func (u *Usecase) ClearAllTeams(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := u.repo.ClearTickets(ctx); err != nil {
		return err
	}
	u.log.Infow("all teams cleared")
	return nil
}

// MyTickets returns the tickets registered to a member's team code.
func (u *Usecase) MyTickets(ctx context.Context, teamCode string) ([]entities.Ticket, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if teamCode == "" {
		return nil, fmt.Errorf("%w: team_code is required", entities.ErrInvalidArgument)
	}
	return u.repo.ListTicketsByTeamCode(ctx, teamCode)
}

// TicketQR renders the stored payload of a ticket as a PNG QR code.
func (u *Usecase) TicketQR(ctx context.Context, ticketID string) ([]byte, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	ticket, err := u.Ticket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	return qr.ImagePNG(ticket.QRPayload)
}

// TicketPDF renders the printable entry pass for a ticket.
func (u *Usecase) TicketPDF(ctx context.Context, ticketID string) ([]byte, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	ticket, err := u.Ticket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	png, err := qr.ImagePNG(ticket.QRPayload)
	if err != nil {
		return nil, err
	}
	return pdf.EntryPass(*ticket, png, u.cfg.Event)
}

// MyTicketQR renders a ticket QR for its owning team only. Tickets of other
// teams read as not found.
func (u *Usecase) MyTicketQR(ctx context.Context, teamCode, ticketID string) ([]byte, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	ticket, err := u.ownedTicket(ctx, teamCode, ticketID)
	if err != nil {
		return nil, err
	}
	return qr.ImagePNG(ticket.QRPayload)
}

// MyTicketPDF renders a ticket entry pass for its owning team only.
func (u *Usecase) MyTicketPDF(ctx context.Context, teamCode, ticketID string) ([]byte, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	ticket, err := u.ownedTicket(ctx, teamCode, ticketID)
	if err != nil {
		return nil, err
	}
	png, err := qr.ImagePNG(ticket.QRPayload)
	if err != nil {
		return nil, err
	}
	return pdf.EntryPass(*ticket, png, u.cfg.Event)
}

func (u *Usecase) ownedTicket(ctx context.Context, teamCode, ticketID string) (*entities.Ticket, error) {
	if teamCode == "" || ticketID == "" {
		return nil, fmt.Errorf("%w: team_code and ticket_id are required", entities.ErrInvalidArgument)
	}
	ticket, err := u.repo.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.TeamCode != teamCode {
		return nil, entities.ErrTicketNotFound
	}
	return ticket, nil
}
