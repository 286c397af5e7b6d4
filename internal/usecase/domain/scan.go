package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ANURA4G/event-ticketing-app/internal/entities"
	"github.com/ANURA4G/event-ticketing-app/internal/qr"
)

// VerifyScan walks a scanned QR token through decryption, signature check,
// ticket lookup, tamper check and the duplicate-entry guard, then records
// attendance. Rejections come back as a ScanResult, not an error; only
// storage failures bubble up.
func (u *Usecase) VerifyScan(ctx context.Context, qrData, scannedBy string) (entities.ScanResult, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	qrData = strings.TrimSpace(qrData)
	if qrData == "" {
		return rejected("No QR data provided"), nil
	}

	payload, err := u.codec.Decode(qrData)
	if err != nil {
		if !errors.Is(err, entities.ErrBadPayload) {
			return entities.ScanResult{}, err
		}
		u.log.Warnw("qr decode rejected", "error", err)
		if errors.Is(err, qr.ErrSignature) {
			return rejected("Invalid signature - payload may be tampered"), nil
		}
		return rejected("Failed to decode payload"), nil
	}

	if payload.TicketID == "" {
		return rejected("Invalid ticket data in QR code"), nil
	}

	ticket, err := u.repo.GetTicket(ctx, payload.TicketID)
	if err != nil {
		if errors.Is(err, entities.ErrTicketNotFound) {
			return rejected(fmt.Sprintf("Ticket %s not found in system", payload.TicketID)), nil
		}
		return entities.ScanResult{}, err
	}

	if ticket.TeamCode != payload.TeamCode {
		return rejected("Ticket data mismatch - possible tampering"), nil
	}

	if rec, err := u.repo.GetAttendance(ctx, ticket.TicketID); err != nil {
		return entities.ScanResult{}, err
	} else if rec != nil {
		return alreadyUsed(ticket, rec), nil
	}

	return u.checkIn(ctx, ticket, orDefault(scannedBy, "scanner"))
}

// ManualCheckIn records entry by ticket id or team code, for when the camera
// scanner is unusable. Codes are matched case-insensitively.
func (u *Usecase) ManualCheckIn(ctx context.Context, code, scannedBy string) (entities.ScanResult, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return rejected("No ticket ID provided"), nil
	}

	ticket, err := u.repo.GetTicket(ctx, code)
	if errors.Is(err, entities.ErrTicketNotFound) {
		ticket, err = u.repo.GetTicketByTeamCode(ctx, code)
	}
	if err != nil {
		if errors.Is(err, entities.ErrTicketNotFound) {
			return rejected(fmt.Sprintf("Ticket %s not found in system", code)), nil
		}
		return entities.ScanResult{}, err
	}

	if rec, err := u.repo.GetAttendance(ctx, ticket.TicketID); err != nil {
		return entities.ScanResult{}, err
	} else if rec != nil {
		return alreadyUsed(ticket, rec), nil
	}

	return u.checkIn(ctx, ticket, orDefault(scannedBy, "manual"))
}

// TicketStatus reports a ticket's state without recording attendance.
func (u *Usecase) TicketStatus(ctx context.Context, ticketID string) (entities.ScanResult, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	ticket, err := u.repo.GetTicket(ctx, ticketID)
	if err != nil {
		if errors.Is(err, entities.ErrTicketNotFound) {
			return rejected("Ticket not found"), nil
		}
		return entities.ScanResult{}, err
	}

	rec, err := u.repo.GetAttendance(ctx, ticket.TicketID)
	if err != nil {
		return entities.ScanResult{}, err
	}
	if rec != nil {
		at := rec.ScannedAt
		return entities.ScanResult{
			OK:        true,
			Status:    entities.ScanCheckedIn,
			Message:   "Already checked in",
			Ticket:    ticket,
			ScannedAt: &at,
		}, nil
	}
	return entities.ScanResult{
		OK:      true,
		Status:  entities.ScanValid,
		Message: "Ticket is valid",
		Ticket:  ticket,
	}, nil
}

// checkIn marks attendance for a ticket. Two scanners can race past the
// GetAttendance probe, so a duplicate from the store is folded back into
// the USED verdict instead of an error.
func (u *Usecase) checkIn(ctx context.Context, ticket *entities.Ticket, scannedBy string) (entities.ScanResult, error) {
	rec, err := u.repo.MarkAttendance(ctx, entities.AttendanceRecord{
		TicketID:  ticket.TicketID,
		TeamCode:  ticket.TeamCode,
		TeamName:  ticket.TeamName,
		Status:    entities.AttendancePresent,
		ScannedAt: time.Now(),
		ScannedBy: scannedBy,
	})
	if err != nil {
		if errors.Is(err, entities.ErrTicketUsed) {
			existing, gerr := u.repo.GetAttendance(ctx, ticket.TicketID)
			if gerr == nil && existing != nil {
				return alreadyUsed(ticket, existing), nil
			}
			return alreadyUsed(ticket, nil), nil
		}
		return entities.ScanResult{}, err
	}

	u.log.Infow("entry allowed", "ticket_id", ticket.TicketID, "team", ticket.TeamName, "scanned_by", scannedBy)
	at := rec.ScannedAt
	return entities.ScanResult{
		OK:        true,
		Status:    entities.ScanValid,
		Message:   "Entry Allowed",
		Ticket:    ticket,
		ScannedAt: &at,
	}, nil
}

func rejected(msg string) entities.ScanResult {
	return entities.ScanResult{Status: entities.ScanInvalid, Message: msg}
}

func alreadyUsed(ticket *entities.Ticket, rec *entities.AttendanceRecord) entities.ScanResult {
	res := entities.ScanResult{
		Status:  entities.ScanUsed,
		Message: "Ticket already used for entry",
		Ticket:  ticket,
	}
	if rec != nil {
		at := rec.ScannedAt
		res.ScannedAt = &at
	}
	return res
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
